// Package generate renders configured icons to SVG files.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/goaround-icons/src/config"
	"github.com/sofmeright/goaround-icons/src/icons"
)

// Status describes what happened to one output file.
type Status string

const (
	StatusWritten   Status = "written"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
)

// Result is the outcome for a single item.
type Result struct {
	Name   string
	Icon   string // resolved catalog id
	Output string
	Status Status
	Err    error
}

// Generator writes icon items to disk with bounded concurrency.
type Generator struct {
	Render      config.RenderConfig
	OutputDir   string
	Concurrency int
	Logger      *zap.SugaredLogger

	renderer *icons.Renderer
}

// New creates a generator from loaded configuration.
func New(cfg *config.Config, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Generator{
		Render:      cfg.Render,
		OutputDir:   cfg.Generate.OutputDir,
		Concurrency: cfg.Generate.Concurrency,
		Logger:      logger,
		renderer:    icons.NewRenderer(cfg.Render.Options()),
	}
}

// Run renders every item. Files whose content already matches are left
// untouched. Results come back in item order; the error joins every
// per-item failure.
func (g *Generator) Run(ctx context.Context, items []config.IconItem) ([]Result, error) {
	limit := g.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]Result, len(items))
	var (
		mu   sync.Mutex
		errs []error
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, item := range items {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := g.generateOne(item)
			results[i] = res
			if res.Err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", item.Name, res.Err))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return results, errors.Join(errs...)
	}
	return results, nil
}

func (g *Generator) generateOne(item config.IconItem) Result {
	out := item.OutputPath(g.OutputDir)
	res := Result{
		Name:   item.Name,
		Icon:   icons.Resolve(item.Type, item.Category).ID,
		Output: out,
	}

	svg, err := g.renderer.Render(item.Type, item.Category, item.ResolvedColor(g.Render), item.ResolvedRotation(g.Render))
	if err != nil {
		res.Status, res.Err = StatusFailed, err
		g.Logger.Warnw("Icon render failed", "item", item.Name, "error", err)
		return res
	}

	written, err := writeIfChanged(out, []byte(svg))
	if err != nil {
		res.Status, res.Err = StatusFailed, err
		g.Logger.Warnw("Icon write failed", "item", item.Name, "output", out, "error", err)
		return res
	}

	res.Status = StatusUnchanged
	if written {
		res.Status = StatusWritten
	}
	g.Logger.Debugw("Icon generated", "item", item.Name, "icon", res.Icon, "output", out, "status", res.Status)
	return res
}

// writeIfChanged writes data to path unless the file already holds exactly data.
func writeIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating icon directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing icon: %w", err)
	}
	return true, nil
}
