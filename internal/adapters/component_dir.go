package adapters

import (
	"context"
	"errors"
	"os"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog/log"

	"bundled-components/internal/ports"
	"bundled-components/internal/types"
)

// ComponentDirAdapter discovers components as the immediate subdirectories
// of a component root. Each directory either carries a manifest file or
// gets one synthesized from <name>.css and <name>.js.
type ComponentDirAdapter struct {
	FS     billy.Filesystem
	Linter *ManifestLinter
}

func NewComponentDirAdapter(fs billy.Filesystem) ComponentDirAdapter {
	return ComponentDirAdapter{
		FS:     fs,
		Linter: NewManifestLinter(),
	}
}

func (a ComponentDirAdapter) DiscoverComponents(ctx context.Context, root string) ([]types.Component, error) {
	info, err := a.FS.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Ctx(ctx).Debug().Str("root", root).Msg("component root does not exist")
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat component root: " + root).
			WithCause(err)
	}
	if !info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("component root is not a directory: " + root)
	}

	entries, err := a.FS.ReadDir(root)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read component root: " + root).
			WithCause(err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var components []types.Component
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		component, ok := a.LoadComponent(a.FS.Join(root, entry.Name()), entry.Name())
		if !ok {
			continue
		}
		components = append(components, component)
	}
	log.Ctx(ctx).Debug().Str("root", root).Int("components", len(components)).Msg("components discovered")
	return components, nil
}

// LoadComponent reads the manifest in dir, or synthesizes one when the
// directory has none. It reports false when a manifest exists but cannot
// be used; the failure is logged and the component is skipped.
func (a ComponentDirAdapter) LoadComponent(dir string, name string) (types.Component, bool) {
	path, found := a.findManifest(dir)
	if !found {
		return a.SynthesizeManifest(dir, name), true
	}

	data, err := util.ReadFile(a.FS, path)
	if err != nil {
		log.Error().Err(err).Str("manifest", path).Msg("failed to read component manifest; skipping component")
		return types.Component{}, false
	}
	raw, err := DecodeManifest(path, data)
	if err != nil {
		log.Error().Err(err).Str("manifest", path).Msg("failed to parse component manifest; skipping component")
		return types.Component{}, false
	}
	component, warnings, err := ComponentFromManifest(raw, dir, path)
	if err != nil {
		log.Error().Err(err).Str("manifest", path).Msg("invalid component manifest; skipping component")
		return types.Component{}, false
	}
	if a.Linter != nil {
		warnings = append(warnings, a.Linter.Lint(raw)...)
	}
	for _, warning := range warnings {
		log.Warn().Str("component", component.Name).Str("manifest", path).Msg(warning)
	}
	return component, true
}

// SynthesizeManifest builds a component from filename conventions. Only
// files that exist are listed; requirements cannot be inferred.
func (a ComponentDirAdapter) SynthesizeManifest(dir string, name string) types.Component {
	component := types.Component{
		Name:     name,
		Type:     types.ComponentTypeAuto,
		Styles:   []string{},
		Scripts:  []string{},
		Requires: []string{},
		Path:     dir,
	}
	if a.isFile(a.FS.Join(dir, name+".css")) {
		component.Styles = append(component.Styles, name+".css")
	}
	if a.isFile(a.FS.Join(dir, name+".js")) {
		component.Scripts = append(component.Scripts, name+".js")
	}
	return component
}

func (a ComponentDirAdapter) findManifest(dir string) (string, bool) {
	for _, fileName := range types.ManifestFileNames {
		path := a.FS.Join(dir, fileName)
		if a.isFile(path) {
			return path, true
		}
	}
	return "", false
}

func (a ComponentDirAdapter) isFile(path string) bool {
	info, err := a.FS.Stat(path)
	return err == nil && !info.IsDir()
}

var _ ports.ComponentSourcePort = ComponentDirAdapter{}
