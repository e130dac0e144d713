package uwptiles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the render concurrency when none is configured.
const DefaultWorkers = 4

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers sets how many renders run at once. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = max(n, 1)
	}
}

// WithLogger sets the logger that receives one event per rendered file.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// Result is the outcome of one spec.
type Result struct {
	Spec      OutputSpec
	Placement Placement
	Err       error
	Duration  time.Duration
}

// Results holds one Result per spec, in spec order.
type Results []Result

// Succeeded counts renders without error.
func (rs Results) Succeeded() int {
	n := 0
	for _, r := range rs {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts renders with an error.
func (rs Results) Failed() int {
	return len(rs) - rs.Succeeded()
}

// Err joins every failure, each prefixed with its output path.
// It returns nil when all renders succeeded.
func (rs Results) Err() error {
	var errs []error
	for _, r := range rs {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Spec.OutputPath, r.Err))
		}
	}
	return errors.Join(errs...)
}

// Generator renders batches of specs against one canvas and one icon.
type Generator struct {
	renderer *Renderer
	workers  int
	logger   *slog.Logger
}

// NewGenerator creates a Generator. Both sources are shared read-only by all renders.
func NewGenerator(canvas, overlay *Source, opts ...Option) *Generator {
	g := &Generator{
		renderer: NewRenderer(canvas, overlay),
		workers:  DefaultWorkers,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Workers returns the configured concurrency.
func (g *Generator) Workers() int {
	return g.workers
}

// Generate renders every spec and waits for all of them.
// A failing render never stops the others; specs not started before ctx is
// canceled report the context error.
func (g *Generator) Generate(ctx context.Context, specs []OutputSpec) Results {
	if len(specs) == 0 {
		return nil
	}

	results := make(Results, len(specs))
	var eg errgroup.Group
	eg.SetLimit(min(g.workers, len(specs)))

	for i, spec := range specs {
		eg.Go(func() error {
			results[i] = g.renderOne(ctx, spec)
			return nil
		})
	}

	_ = eg.Wait() // workers never return errors; failures live in results
	return results
}

// renderOne renders a single spec and logs it.
func (g *Generator) renderOne(ctx context.Context, spec OutputSpec) Result {
	start := time.Now()
	result := Result{Spec: spec, Placement: PlacementFor(spec)}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	p := result.Placement
	g.logger.InfoContext(ctx, "rendering",
		slog.String("file", spec.OutputPath),
		slog.String("canvas", fmt.Sprintf("%dx%d", spec.CanvasWidth, spec.CanvasHeight)),
		slog.String("overlay", fmt.Sprintf("%dx%d", p.OverlayWidth, p.OverlayHeight)),
		slog.String("offset", fmt.Sprintf("%dx%d", p.Left, p.Top)),
	)

	result.Err = g.renderer.Render(ctx, spec)
	result.Duration = time.Since(start)

	if result.Err != nil {
		g.logger.ErrorContext(ctx, "render failed",
			slog.String("file", spec.OutputPath),
			slog.Any("error", result.Err),
		)
		return result
	}

	g.logger.DebugContext(ctx, "rendered",
		slog.String("file", spec.OutputPath),
		slog.Duration("duration", result.Duration),
	)
	return result
}
