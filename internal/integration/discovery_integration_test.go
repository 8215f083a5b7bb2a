package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"bundled-components/internal/adapters"
	"bundled-components/internal/core"
	"bundled-components/internal/types"
)

func TestResolveIntegration(t *testing.T) {
	root := filepath.Join(repoRoot(t), "fixtures", "site")
	fs := osfs.New("/")
	opts := types.DefaultOptions()

	discovery := adapters.NewComponentDirAdapter(fs)
	var components []types.Component
	for _, componentRoot := range opts.ComponentRoots() {
		found, err := discovery.DiscoverComponents(t.Context(), filepath.Join(root, componentRoot))
		require.NoError(t, err)
		components = append(components, found...)
	}
	lookup, err := core.BuildLookupTable(components)
	require.NoError(t, err)
	require.Empty(t, core.ValidateRequirements(lookup))

	pages, err := adapters.NewPageSourceAdapter(fs).LoadPages(t.Context(), filepath.Join(root, opts.Source))
	require.NoError(t, err)

	scanner := core.NewUsageScanner(adapters.NewLayoutDirAdapter(fs), opts.DirectoryMarkers(), opts.TemplateExtensions)
	used := scanner.DetectUsedComponents(t.Context(), pages, filepath.Join(root, opts.LayoutsPath))
	needed := core.ResolveAllDependencies(used, lookup)
	if diff := cmp.Diff([]string{"button", "hero", "icon", "image"}, needed.Sorted()); diff != "" {
		t.Fatalf("unexpected needed components (-want +got):\n%s", diff)
	}

	for name, page := range pages {
		errs := core.ValidateSections(t.Context(), page.Sections, core.LookupAccessor(lookup), name)
		require.Empty(t, errs, "unexpected validation errors in %s", name)
	}

	outDir := t.TempDir()
	bundler := adapters.NewConcatBundlerAdapter(fs, outDir)
	result, err := bundler.Bundle(t.Context(), types.BundleRequest{
		Components:   core.FilterToNeeded(components, needed),
		MainCSSEntry: filepath.Join(root, opts.MainCSSEntry),
		CSSDest:      opts.CSSDest,
		JSDest:       opts.JSDest,
	})
	require.NoError(t, err)
	require.True(t, result.CSS.Written)

	_, err = os.Stat(filepath.Join(outDir, "assets", "main.css"))
	require.NoError(t, err)
}

func repoRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
