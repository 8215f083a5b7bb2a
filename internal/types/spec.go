package types

import (
	"path/filepath"
	"strings"
)

// ValidationOptions controls whether section validation runs and how its
// findings affect the build.
type ValidationOptions struct {
	Enabled         bool `mapstructure:"enabled" yaml:"enabled"`
	Strict          bool `mapstructure:"strict" yaml:"strict"`
	ReportAllErrors bool `mapstructure:"report_all_errors" yaml:"report_all_errors"`
}

// Options is the plugin configuration of one build pass. Paths are relative
// to the project directory unless absolute.
type Options struct {
	BasePath     string `mapstructure:"base_path" yaml:"base_path"`
	SectionsPath string `mapstructure:"sections_path" yaml:"sections_path"`
	LayoutsPath  string `mapstructure:"layouts_path" yaml:"layouts_path"`

	Source      string `mapstructure:"source" yaml:"source"`
	Destination string `mapstructure:"destination" yaml:"destination"`

	CSSDest      string `mapstructure:"css_dest" yaml:"css_dest"`
	JSDest       string `mapstructure:"js_dest" yaml:"js_dest"`
	MainCSSEntry string `mapstructure:"main_css_entry" yaml:"main_css_entry"`
	MainJSEntry  string `mapstructure:"main_js_entry" yaml:"main_js_entry"`
	MinifyOutput bool   `mapstructure:"minify_output" yaml:"minify_output"`

	// TemplateExtensions selects which page and layout files are scanned
	// for template tags, e.g. ".njk".
	TemplateExtensions []string `mapstructure:"template_extensions" yaml:"template_extensions"`

	// DependencyOrder sorts bundle inputs so requirements precede their
	// dependents. Off by default since components are scope-isolated.
	DependencyOrder bool `mapstructure:"dependency_order" yaml:"dependency_order"`

	Validation ValidationOptions `mapstructure:"validation" yaml:"validation"`
}

// DefaultOptions returns the configuration used when nothing is set.
func DefaultOptions() Options {
	return Options{
		BasePath:           "lib/layouts/components/_partials",
		SectionsPath:       "lib/layouts/components/sections",
		LayoutsPath:        "lib/layouts",
		Source:             "src",
		Destination:        "build",
		CSSDest:            "assets/main.css",
		JSDest:             "assets/main.js",
		MainCSSEntry:       "lib/assets/main.css",
		MainJSEntry:        "lib/assets/main.js",
		TemplateExtensions: []string{".njk"},
		Validation: ValidationOptions{
			Enabled:         true,
			ReportAllErrors: true,
		},
	}
}

// WithDefaults fills the required path fields and the template extensions
// from DefaultOptions. LayoutsPath and the main entries are optional and
// booleans are taken as given.
func (o Options) WithDefaults() Options {
	defaults := DefaultOptions()
	fill := func(value *string, fallback string) {
		if strings.TrimSpace(*value) == "" {
			*value = fallback
		}
	}
	fill(&o.BasePath, defaults.BasePath)
	fill(&o.SectionsPath, defaults.SectionsPath)
	fill(&o.Source, defaults.Source)
	fill(&o.Destination, defaults.Destination)
	fill(&o.CSSDest, defaults.CSSDest)
	fill(&o.JSDest, defaults.JSDest)
	if len(o.TemplateExtensions) == 0 {
		o.TemplateExtensions = defaults.TemplateExtensions
	}
	return o
}

// ComponentRoots returns the component root directories in discovery order.
func (o Options) ComponentRoots() []string {
	return []string{o.BasePath, o.SectionsPath}
}

// DirectoryMarkers returns the path segments that precede a component name
// in template include paths: the base names of both component roots.
func (o Options) DirectoryMarkers() []string {
	var markers []string
	for _, root := range o.ComponentRoots() {
		base := filepath.Base(filepath.Clean(root))
		if base == "." || base == string(filepath.Separator) {
			continue
		}
		markers = append(markers, base)
	}
	return markers
}
