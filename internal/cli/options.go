package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bundled-components/internal/types"
)

// optionFlags carries the plugin configuration flags shared by build,
// validate and inspect.
type optionFlags struct {
	BasePath           string
	SectionsPath       string
	LayoutsPath        string
	Source             string
	Destination        string
	CSSDest            string
	JSDest             string
	MainCSSEntry       string
	MainJSEntry        string
	MinifyOutput       bool
	TemplateExtensions []string
	DependencyOrder    bool
	Validate           bool
	Strict             bool
	ReportAllErrors    bool
}

// optionBinding maps a viper key to its flag name.
type optionBinding struct {
	Key  string
	Flag string
}

var optionBindings = []optionBinding{
	{"base_path", "base-path"},
	{"sections_path", "sections-path"},
	{"layouts_path", "layouts-path"},
	{"source", "source"},
	{"destination", "destination"},
	{"css_dest", "css-dest"},
	{"js_dest", "js-dest"},
	{"main_css_entry", "main-css"},
	{"main_js_entry", "main-js"},
	{"minify_output", "minify"},
	{"template_extensions", "template-ext"},
	{"dependency_order", "dependency-order"},
	{"validation.enabled", "validate"},
	{"validation.strict", "strict"},
	{"validation.report_all_errors", "report-all-errors"},
}

func addOptionFlags(cmd *cobra.Command, opts *optionFlags) {
	defaults := types.DefaultOptions()
	flags := cmd.Flags()
	flags.StringVar(&opts.BasePath, "base-path", defaults.BasePath, "Component root for partials")
	flags.StringVar(&opts.SectionsPath, "sections-path", defaults.SectionsPath, "Component root for sections")
	flags.StringVar(&opts.LayoutsPath, "layouts-path", defaults.LayoutsPath, "Layout tree scanned for template tags (empty to skip)")
	flags.StringVar(&opts.Source, "source", defaults.Source, "Site source directory")
	flags.StringVar(&opts.Destination, "destination", defaults.Destination, "Build output directory")
	flags.StringVar(&opts.CSSDest, "css-dest", defaults.CSSDest, "CSS bundle path under the destination")
	flags.StringVar(&opts.JSDest, "js-dest", defaults.JSDest, "JS bundle path under the destination")
	flags.StringVar(&opts.MainCSSEntry, "main-css", defaults.MainCSSEntry, "Main CSS entry placed before component styles")
	flags.StringVar(&opts.MainJSEntry, "main-js", defaults.MainJSEntry, "Main JS entry placed before component scripts")
	flags.BoolVar(&opts.MinifyOutput, "minify", defaults.MinifyOutput, "Minify bundles")
	flags.StringSliceVar(&opts.TemplateExtensions, "template-ext", defaults.TemplateExtensions, "Template file extensions scanned for tags")
	flags.BoolVar(&opts.DependencyOrder, "dependency-order", defaults.DependencyOrder, "Order bundle inputs so requirements come first")
	flags.BoolVar(&opts.Validate, "validate", defaults.Validation.Enabled, "Validate page sections against component rules")
	flags.BoolVar(&opts.Strict, "strict", defaults.Validation.Strict, "Fail the build on section validation errors")
	flags.BoolVar(&opts.ReportAllErrors, "report-all-errors", defaults.Validation.ReportAllErrors, "Keep validating after the first file with errors")

	for _, binding := range optionBindings {
		_ = viper.BindPFlag(binding.Key, flags.Lookup(binding.Flag))
	}
}

// resolveOptions merges flags and config: an explicitly set flag wins,
// otherwise the viper value (config file, env, flag default) is used.
func resolveOptions(cmd *cobra.Command, opts optionFlags) types.Options {
	return types.Options{
		BasePath:           resolveString(cmd, opts.BasePath, "base_path", "base-path"),
		SectionsPath:       resolveString(cmd, opts.SectionsPath, "sections_path", "sections-path"),
		LayoutsPath:        resolveString(cmd, opts.LayoutsPath, "layouts_path", "layouts-path"),
		Source:             resolveString(cmd, opts.Source, "source", "source"),
		Destination:        resolveString(cmd, opts.Destination, "destination", "destination"),
		CSSDest:            resolveString(cmd, opts.CSSDest, "css_dest", "css-dest"),
		JSDest:             resolveString(cmd, opts.JSDest, "js_dest", "js-dest"),
		MainCSSEntry:       resolveString(cmd, opts.MainCSSEntry, "main_css_entry", "main-css"),
		MainJSEntry:        resolveString(cmd, opts.MainJSEntry, "main_js_entry", "main-js"),
		MinifyOutput:       resolveBool(cmd, opts.MinifyOutput, "minify_output", "minify"),
		TemplateExtensions: normalizeExtensions(resolveStrings(cmd, opts.TemplateExtensions, "template_extensions", "template-ext")),
		DependencyOrder:    resolveBool(cmd, opts.DependencyOrder, "dependency_order", "dependency-order"),
		Validation: types.ValidationOptions{
			Enabled:         resolveBool(cmd, opts.Validate, "validation.enabled", "validate"),
			Strict:          resolveBool(cmd, opts.Strict, "validation.strict", "strict"),
			ReportAllErrors: resolveBool(cmd, opts.ReportAllErrors, "validation.report_all_errors", "report-all-errors"),
		},
	}
}

func projectDir(cmd *cobra.Command) string {
	dir := ""
	if flag := cmd.Flags().Lookup("project"); flag != nil && flag.Changed {
		dir = flag.Value.String()
	} else {
		dir = viper.GetString("project_dir")
	}
	if strings.TrimSpace(dir) == "" {
		return "."
	}
	return dir
}

// normalizeExtensions accepts "njk" as well as ".njk".
func normalizeExtensions(values []string) []string {
	var out []string
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if !strings.HasPrefix(value, ".") {
			value = "." + value
		}
		out = append(out, value)
	}
	return out
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
