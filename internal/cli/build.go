package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bundled-components/internal/app"
)

func newBuildCommand() *cobra.Command {
	opts := optionFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Bundle the styles and scripts of the components the site uses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}
	addOptionFlags(cmd, &opts)
	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts optionFlags) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		ProjectDir: projectDir(cmd),
		Options:    resolveOptions(cmd, opts),
	})
	if err != nil {
		return err
	}
	fmt.Printf("components: %d discovered, %d used, %d bundled\n", len(result.Discovered), len(result.Used), len(result.Bundled))
	if len(result.Bundled) > 0 {
		fmt.Printf("  %s\n", strings.Join(result.Bundled, ", "))
	}
	fmt.Printf("css: %s\n", result.Bundles.CSS)
	fmt.Printf("js: %s\n", result.Bundles.JS)
	if len(result.ValidationReports) > 0 {
		fmt.Printf("section validation warnings in %d file(s)\n", len(result.ValidationReports))
	}
	return nil
}
