package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog/log"

	"bundled-components/internal/ports"
	"bundled-components/internal/shared"
	"bundled-components/internal/types"
)

// LayoutDirAdapter reads layout templates from a directory tree.
type LayoutDirAdapter struct {
	FS billy.Filesystem
}

func NewLayoutDirAdapter(fs billy.Filesystem) LayoutDirAdapter {
	return LayoutDirAdapter{FS: fs}
}

func (a LayoutDirAdapter) TemplateFiles(ctx context.Context, root string, patterns []string) []types.TemplateFile {
	if strings.TrimSpace(root) == "" {
		return nil
	}
	if _, err := a.FS.Stat(root); err != nil {
		log.Ctx(ctx).Debug().Str("root", root).Msg("layout directory not found; skipping layout scan")
		return nil
	}

	var files []types.TemplateFile
	_ = util.Walk(a.FS, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("skipping unreadable layout path")
			return nil
		}
		if info.IsDir() {
			if path != root && shouldSkipLayoutDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if !shared.MatchesTemplate(rel, patterns) {
			return nil
		}
		contents, readErr := util.ReadFile(a.FS, path)
		if readErr != nil {
			log.Ctx(ctx).Debug().Err(readErr).Str("path", path).Msg("skipping unreadable layout file")
			return nil
		}
		files = append(files, types.TemplateFile{Path: path, Contents: contents})
		return nil
	})
	return files
}

func shouldSkipLayoutDir(name string) bool {
	switch name {
	case "node_modules", ".git", ".cache":
		return true
	default:
		return false
	}
}

var _ ports.TemplateSourcePort = LayoutDirAdapter{}
