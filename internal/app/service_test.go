package app

import (
	"path/filepath"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"bundled-components/internal/types"
)

const testProject = "/site"

// sampleSite is a small project: hero requires button and image, both of
// which require icon. The layout includes footer; card is never used.
func sampleSite() map[string]string {
	return map[string]string{
		"lib/layouts/components/_partials/button/manifest.json": `{"name": "button", "styles": ["button.css"], "requires": ["icon"]}`,
		"lib/layouts/components/_partials/button/button.css":    ".button {}",
		"lib/layouts/components/_partials/icon/icon.css":        ".icon {}",
		"lib/layouts/components/_partials/image/manifest.yaml":  "name: image\nscripts: [image.js]\ndependencies: [icon]\n",
		"lib/layouts/components/_partials/image/image.js":       "lazy()",
		"lib/layouts/components/_partials/card/card.css":        ".card {}",
		"lib/layouts/components/_partials/footer/footer.css":    ".footer {}",
		"lib/layouts/components/sections/hero/manifest.json": `{
  "name": "hero",
  "type": "section",
  "styles": ["hero.css"],
  "requires": ["button", "image"],
  "validation": {
    "required": ["title"],
    "properties": {"fullWidth": {"type": "boolean"}}
  }
}`,
		"lib/layouts/components/sections/hero/hero.css": ".hero {}",
		"lib/layouts/base.njk":                          `{% include "components/_partials/footer/footer.njk" %}`,
		"lib/assets/main.css":                           "body {}",
		"src/index.md":                                  "---\nsections:\n  - sectionType: hero\n    title: Welcome\n---\n# Home\n",
	}
}

func newTestService(t *testing.T, files map[string]string) (Service, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	for path, contents := range files {
		writeSiteFile(t, fs, path, contents)
	}
	return NewServiceWithFS(fs), fs
}

func writeSiteFile(t *testing.T, fs billy.Filesystem, path string, contents string) {
	t.Helper()
	full := filepath.Join(testProject, path)
	require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, util.WriteFile(fs, full, []byte(contents), 0644))
}

func testOptions(mutators ...func(*types.Options)) types.Options {
	opts := types.DefaultOptions()
	for _, mutate := range mutators {
		mutate(&opts)
	}
	return opts
}
