package adapters

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"bundled-components/internal/ports"
	"bundled-components/internal/types"
)

// PageSourceAdapter loads a site source tree into the page file map, keyed
// by slash-separated path relative to the source root.
type PageSourceAdapter struct {
	FS billy.Filesystem
}

func NewPageSourceAdapter(fs billy.Filesystem) PageSourceAdapter {
	return PageSourceAdapter{FS: fs}
}

func (a PageSourceAdapter) LoadPages(ctx context.Context, root string) (map[string]types.PageFile, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source directory is empty")
	}
	if _, err := a.FS.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("source directory not found: " + root).
				WithCause(err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat source directory: " + root).
			WithCause(err)
	}

	pages := map[string]types.PageFile{}
	err := util.Walk(a.FS, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := util.ReadFile(a.FS, path)
		if err != nil {
			return err
		}
		page, err := ParsePage(data)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse frontmatter: " + rel).
				WithCause(err)
		}
		pages[filepath.ToSlash(rel)] = page
		return nil
	})
	if err != nil {
		var builder *errbuilder.ErrBuilder
		if errors.As(err, &builder) {
			return nil, err
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read source directory: " + root).
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("source", root).Int("files", len(pages)).Msg("pages loaded")
	return pages, nil
}

var frontmatterDelimiter = []byte("---")

// ParsePage splits leading YAML frontmatter from the body. The "sections"
// key populates PageFile.Sections; other keys stay in Frontmatter.
func ParsePage(data []byte) (types.PageFile, error) {
	header, body, ok := splitFrontmatter(data)
	if !ok {
		return types.PageFile{Contents: data}, nil
	}
	var frontmatter map[string]any
	if err := yaml.Unmarshal(header, &frontmatter); err != nil {
		return types.PageFile{}, err
	}
	page := types.PageFile{Contents: body, Frontmatter: frontmatter}
	if sections, ok := frontmatter["sections"].([]any); ok {
		page.Sections = sections
		delete(frontmatter, "sections")
	}
	return page, nil
}

func splitFrontmatter(data []byte) ([]byte, []byte, bool) {
	firstEnd := bytes.IndexByte(data, '\n')
	if firstEnd < 0 || !bytes.Equal(bytes.TrimRight(data[:firstEnd], "\r"), frontmatterDelimiter) {
		return nil, nil, false
	}
	offset := firstEnd + 1
	for offset <= len(data) {
		lineEnd := bytes.IndexByte(data[offset:], '\n')
		var line []byte
		next := len(data)
		if lineEnd < 0 {
			line = data[offset:]
		} else {
			line = data[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}
		if bytes.Equal(bytes.TrimRight(line, "\r"), frontmatterDelimiter) {
			return data[firstEnd+1 : offset], data[next:], true
		}
		if lineEnd < 0 {
			break
		}
		offset = next
	}
	return nil, nil, false
}

var _ ports.PageSourcePort = PageSourceAdapter{}
