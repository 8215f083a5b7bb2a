package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bundled-components/internal/app"
)

func newInspectCommand() *cobra.Command {
	opts := optionFlags{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show discovered, used and needed components and their order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	addOptionFlags(cmd, &opts)
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts optionFlags) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		ProjectDir: projectDir(cmd),
		Options:    resolveOptions(cmd, opts),
	})
	if err != nil {
		return err
	}

	fmt.Printf("components: %d\n", len(result.Components))
	for _, component := range result.Components {
		fmt.Printf("- %s (%s)%s\n", component.Name, component.Type, inspectFlags(component))
		if len(component.Requires) > 0 {
			fmt.Printf("  requires: %s\n", strings.Join(component.Requires, ", "))
		}
	}
	fmt.Printf("used: %s\n", strings.Join(result.Used, ", "))
	fmt.Printf("needed: %s\n", strings.Join(result.Needed, ", "))
	if result.OrderError != "" {
		fmt.Printf("order: unavailable (%s)\n", result.OrderError)
	} else {
		fmt.Printf("order: %s\n", strings.Join(result.Order, " -> "))
	}
	for _, message := range result.RequirementErrors {
		fmt.Printf("error: %s\n", message)
	}
	for _, hint := range result.Hints {
		fmt.Println(hint)
	}
	return nil
}

func inspectFlags(component app.InspectComponent) string {
	var flags []string
	if component.Used {
		flags = append(flags, "used")
	} else if component.Needed {
		flags = append(flags, "required")
	}
	if component.Validated {
		flags = append(flags, "validated")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ", ") + "]"
}
