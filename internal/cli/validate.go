package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bundled-components/internal/app"
)

func newValidateCommand() *cobra.Command {
	opts := optionFlags{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check component requirements and page sections without bundling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	addOptionFlags(cmd, &opts)
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts optionFlags) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		ProjectDir: projectDir(cmd),
		Options:    resolveOptions(cmd, opts),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %d components, %d files\n", result.ComponentCount, result.FileCount)
	if result.Findings > 0 {
		fmt.Printf("invalid sections (not fatal): %d\n", result.Findings)
	}
	return nil
}
