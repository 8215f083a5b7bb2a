package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundled-components/internal/types"
)

func TestBuildApp(t *testing.T) {
	service, fs := newTestService(t, sampleSite())

	result, err := service.Build(t.Context(), BuildRequest{ProjectDir: testProject, Options: testOptions()})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"footer", "hero"}, result.Used); diff != "" {
		t.Fatalf("unexpected used components (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"button", "footer", "hero", "icon", "image"}, result.Needed); diff != "" {
		t.Fatalf("unexpected needed components (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"button", "footer", "icon", "image", "hero"}, result.Bundled); diff != "" {
		t.Fatalf("unexpected bundled components (-want +got):\n%s", diff)
	}
	assert.Empty(t, result.ValidationReports)

	require.True(t, result.Bundles.CSS.Written)
	assert.Equal(t, "/site/build/assets/main.css", result.Bundles.CSS.Path)
	assert.Equal(t, []string{
		"/site/lib/assets/main.css",
		"/site/lib/layouts/components/_partials/button/button.css",
		"/site/lib/layouts/components/_partials/footer/footer.css",
		"/site/lib/layouts/components/_partials/icon/icon.css",
		"/site/lib/layouts/components/sections/hero/hero.css",
	}, result.Bundles.CSS.Inputs)
	css, err := util.ReadFile(fs, "/site/build/assets/main.css")
	require.NoError(t, err)
	assert.NotContains(t, string(css), ".card")

	require.True(t, result.Bundles.JS.Written)
	assert.Equal(t, []string{"/site/lib/layouts/components/_partials/image/image.js"}, result.Bundles.JS.Inputs)
}

func TestBuildAppDependencyOrder(t *testing.T) {
	service, _ := newTestService(t, sampleSite())

	result, err := service.Build(t.Context(), BuildRequest{
		ProjectDir: testProject,
		Options:    testOptions(func(o *types.Options) { o.DependencyOrder = true }),
	})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"icon", "button", "footer", "image", "hero"}, result.Bundled); diff != "" {
		t.Fatalf("unexpected bundle order (-want +got):\n%s", diff)
	}
}

func TestBuildAppDependencyCycle(t *testing.T) {
	files := sampleSite()
	files["lib/layouts/components/_partials/icon/manifest.json"] = `{"name": "icon", "requires": ["button"]}`
	service, _ := newTestService(t, files)

	_, err := service.Build(t.Context(), BuildRequest{
		ProjectDir: testProject,
		Options:    testOptions(func(o *types.Options) { o.DependencyOrder = true }),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "dependency cycle: button -> icon -> button")
}

func TestBuildAppMissingRequirement(t *testing.T) {
	files := sampleSite()
	files["lib/layouts/components/sections/hero/manifest.json"] = `{"name": "hero", "requires": ["buton", "image"]}`
	service, _ := newTestService(t, files)

	_, err := service.Build(t.Context(), BuildRequest{ProjectDir: testProject, Options: testOptions()})
	require.Error(t, err)
	assert.True(t, IsMissingRequirements(err))
	assert.Contains(t, err.Error(), "component hero requires buton which was not found")
	assert.Contains(t, err.Error(), "hint: component hero requires buton; did you mean button?")
}

func TestBuildAppMissingRequirementFatalWhenLenient(t *testing.T) {
	files := sampleSite()
	files["lib/layouts/components/_partials/card/manifest.json"] = `{"name": "card", "requires": ["carousel-track"]}`
	service, _ := newTestService(t, files)

	_, err := service.Build(t.Context(), BuildRequest{
		ProjectDir: testProject,
		Options:    testOptions(func(o *types.Options) { o.Validation.Strict = false }),
	})
	require.Error(t, err)
	assert.True(t, IsMissingRequirements(err))
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestBuildAppSectionValidation(t *testing.T) {
	files := sampleSite()
	files["src/index.md"] = "---\nsections:\n  - sectionType: hero\n    fullWidth: \"false\"\n---\n"

	t.Run("strict aborts", func(t *testing.T) {
		service, fs := newTestService(t, files)
		_, err := service.Build(t.Context(), BuildRequest{
			ProjectDir: testProject,
			Options:    testOptions(func(o *types.Options) { o.Validation.Strict = true }),
		})
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
		assert.Contains(t, err.Error(), "section validation failed")
		assert.Contains(t, err.Error(), "index.md: section 0 (hero)")
		assert.Contains(t, err.Error(), "title: required property is missing")

		_, statErr := fs.Stat("/site/build/assets/main.css")
		assert.Error(t, statErr)
	})

	t.Run("lenient warns", func(t *testing.T) {
		service, _ := newTestService(t, files)
		result, err := service.Build(t.Context(), BuildRequest{ProjectDir: testProject, Options: testOptions()})
		require.NoError(t, err)
		require.Len(t, result.ValidationReports, 1)
		assert.Equal(t, "index.md", result.ValidationReports[0].FileName)
		assert.True(t, result.Bundles.CSS.Written)
	})

	t.Run("disabled skips", func(t *testing.T) {
		service, _ := newTestService(t, files)
		result, err := service.Build(t.Context(), BuildRequest{
			ProjectDir: testProject,
			Options: testOptions(func(o *types.Options) {
				o.Validation.Enabled = false
				o.Validation.Strict = true
			}),
		})
		require.NoError(t, err)
		assert.Empty(t, result.ValidationReports)
	})
}

func TestBuildAppDuplicateComponent(t *testing.T) {
	files := sampleSite()
	files["lib/layouts/components/sections/button/button.css"] = ".button {}"
	service, _ := newTestService(t, files)

	_, err := service.Build(t.Context(), BuildRequest{ProjectDir: testProject, Options: testOptions()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "duplicate component name: button")
}

func TestBuildAppMissingSource(t *testing.T) {
	service, _ := newTestService(t, sampleSite())
	_, err := service.Build(t.Context(), BuildRequest{
		ProjectDir: testProject,
		Options:    testOptions(func(o *types.Options) { o.Source = "pages" }),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
