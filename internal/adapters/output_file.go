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
	"golang.org/x/sync/errgroup"

	"bundled-components/internal/ports"
	"bundled-components/internal/types"
)

// ConcatBundlerAdapter writes the main entry followed by every component's
// styles (or scripts) into one file per asset kind. Import resolution and
// tree-shaking are left to a real bundler plugged in through BundlerPort.
type ConcatBundlerAdapter struct {
	FS          billy.Filesystem
	Destination string
}

func NewConcatBundlerAdapter(fs billy.Filesystem, destination string) ConcatBundlerAdapter {
	return ConcatBundlerAdapter{FS: fs, Destination: destination}
}

func (a ConcatBundlerAdapter) Bundle(ctx context.Context, req types.BundleRequest) (types.BundleResult, error) {
	var css, js assembledBundle
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		css, err = a.assemble(groupCtx, req.CSSDest, req.MainCSSEntry, req.Components, func(c types.Component) []string { return c.Styles }, req.Minify)
		return err
	})
	group.Go(func() error {
		var err error
		js, err = a.assemble(groupCtx, req.JSDest, req.MainJSEntry, req.Components, func(c types.Component) []string { return c.Scripts }, req.Minify)
		return err
	})
	if err := group.Wait(); err != nil {
		return types.BundleResult{}, err
	}

	// Writes stay sequential; billy filesystems are not safe for concurrent mutation.
	var result types.BundleResult
	var err error
	if result.CSS, err = a.write(ctx, css); err != nil {
		return types.BundleResult{}, err
	}
	if result.JS, err = a.write(ctx, js); err != nil {
		return types.BundleResult{}, err
	}
	return result, nil
}

type assembledBundle struct {
	output types.BundleOutput
	data   []byte
}

func (a ConcatBundlerAdapter) bundleInputs(ctx context.Context, mainEntry string, components []types.Component, files func(types.Component) []string) ([]string, error) {
	var inputs []string
	if strings.TrimSpace(mainEntry) != "" {
		if _, err := a.FS.Stat(mainEntry); err == nil {
			inputs = append(inputs, mainEntry)
		} else {
			log.Ctx(ctx).Debug().Str("entry", mainEntry).Msg("main entry not found; bundling components only")
		}
	}
	for _, component := range components {
		for _, file := range files(component) {
			path := a.FS.Join(component.Path, file)
			if _, err := a.FS.Stat(path); err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeNotFound).
					WithMsg("component " + component.Name + " lists missing file: " + file).
					WithCause(err)
			}
			inputs = append(inputs, path)
		}
	}
	return inputs, nil
}

func (a ConcatBundlerAdapter) assemble(ctx context.Context, dest string, mainEntry string, components []types.Component, files func(types.Component) []string, minify bool) (assembledBundle, error) {
	inputs, err := a.bundleInputs(ctx, mainEntry, components, files)
	if err != nil {
		return assembledBundle{}, err
	}
	bundle := assembledBundle{output: types.BundleOutput{Path: a.FS.Join(a.Destination, dest), Inputs: inputs}}
	if len(inputs) == 0 {
		return bundle, nil
	}

	var buf bytes.Buffer
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return assembledBundle{}, err
		}
		data, err := util.ReadFile(a.FS, input)
		if err != nil {
			return assembledBundle{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read bundle input: " + input).
				WithCause(err)
		}
		if minify {
			buf.Write(minifyAsset(data))
			continue
		}
		buf.WriteString("/* " + filepath.ToSlash(input) + " */\n")
		buf.Write(bytes.TrimRight(data, "\n"))
		buf.WriteString("\n\n")
	}
	bundle.data = buf.Bytes()
	return bundle, nil
}

func (a ConcatBundlerAdapter) write(ctx context.Context, bundle assembledBundle) (types.BundleOutput, error) {
	output := bundle.output
	if len(output.Inputs) == 0 {
		log.Ctx(ctx).Debug().Str("bundle", output.Path).Msg("no inputs; bundle not written")
		return output, nil
	}
	if err := a.FS.MkdirAll(filepath.Dir(output.Path), 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return output, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create bundle directory").
			WithCause(err)
	}
	if err := util.WriteFile(a.FS, output.Path, bundle.data, 0644); err != nil {
		return output, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write bundle: " + output.Path).
			WithCause(err)
	}
	output.Bytes = len(bundle.data)
	output.Written = true
	log.Ctx(ctx).Debug().Str("bundle", output.Path).Int("inputs", len(output.Inputs)).Int("bytes", output.Bytes).Msg("bundle written")
	return output, nil
}

// minifyAsset trims every line and drops blank ones. It never rewrites
// tokens, so it is safe for both CSS and JS.
func minifyAsset(data []byte) []byte {
	var buf bytes.Buffer
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		buf.WriteString(trimmed)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

var _ ports.BundlerPort = ConcatBundlerAdapter{}
