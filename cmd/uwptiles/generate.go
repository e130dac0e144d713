package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	uwptiles "github.com/alnah/go-uwptiles"
	"github.com/alnah/go-uwptiles/internal/assets"
	"github.com/alnah/go-uwptiles/internal/config"
	"github.com/alnah/go-uwptiles/internal/fileutil"
	"github.com/alnah/go-uwptiles/internal/hints"
)

// Sentinel errors for the generate run.
var (
	ErrNoIcon          = errors.New("no icon file specified")
	ErrCreateOutputDir = errors.New("failed to create output folder")
	ErrRenderFailed    = errors.New("render(s) failed")
)

// runGenerate resolves the configuration, loads both sources once, and
// renders every output spec.
func runGenerate(ctx context.Context, flags *cliFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// CLI wins over env, env over the config file
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if cfg.Input.IconFile == "" {
		return ErrNoIcon
	}

	specs, err := uwptiles.Resolve(cfg.BuildManifest(), uwptiles.ResolveOptions{
		OutputDir:       cfg.Output.Folder,
		NamesInTiles:    cfg.NamesInTiles(),
		IncludeUnplated: cfg.IncludeUnplated(),
	})
	if err != nil {
		return err
	}

	icon, err := loadIcon(cfg.Input.IconFile)
	if err != nil {
		return err
	}
	canvas, err := loadCanvas(cfg.Input.CanvasFile)
	if err != nil {
		return err
	}

	if flags.dryRun {
		printPlan(env.Stdout, specs)
		return nil
	}

	if err := ensureOutputFolder(cfg.Output.Folder); err != nil {
		return err
	}

	workers := resolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d, files: %d\n", workers, len(specs))
	}
	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Generating icons...")
	}

	gen := uwptiles.NewGenerator(canvas, icon,
		uwptiles.WithWorkers(workers),
		uwptiles.WithLogger(newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)),
	)
	results := gen.Generate(ctx, specs)

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRenderFailed, failed, len(results))
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Done")
	}
	return nil
}

// loadConfig loads the config file named by the flag or UWPTILES_CONFIG,
// or returns the defaults when neither is set.
func loadConfig(flagPath string, envCfg *envConfig) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = envCfg.ConfigPath
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound())
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.input.iconFile != "" {
		cfg.Input.IconFile = flags.input.iconFile
	}
	if flags.input.canvasFile != "" {
		cfg.Input.CanvasFile = flags.input.canvasFile
	}
	if flags.input.outputFolder != "" {
		cfg.Output.Folder = flags.input.outputFolder
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.tiles.namesInTiles.set {
		v := flags.tiles.namesInTiles.value
		cfg.Tiles.NamesInTiles = &v
	}
	if flags.tiles.includeUnplated.set {
		v := flags.tiles.includeUnplated.value
		cfg.Tiles.IncludeUnplated = &v
	}
	if cfg.Output.Folder == "" {
		cfg.Output.Folder = config.DefaultOutputFolder
	}
}

// loadIcon reads and probes the icon.
func loadIcon(path string) (*uwptiles.Source, error) {
	src, err := uwptiles.LoadSource(path)
	if err != nil {
		return nil, withSourceHint(fmt.Errorf("icon: %w", err), path)
	}
	if err := src.Probe(); err != nil {
		return nil, withSourceHint(fmt.Errorf("icon: %w", err), path)
	}
	return src, nil
}

// loadCanvas reads and probes the canvas, falling back to the embedded blank one.
func loadCanvas(path string) (*uwptiles.Source, error) {
	if path == "" {
		return uwptiles.NewSource(assets.BlankCanvasName, assets.BlankCanvas()), nil
	}

	src, err := uwptiles.LoadSource(path)
	if err != nil {
		return nil, withSourceHint(fmt.Errorf("canvas: %w", err), path)
	}
	if err := src.Probe(); err != nil {
		return nil, withSourceHint(fmt.Errorf("canvas: %w", err), path)
	}
	return src, nil
}

// withSourceHint appends the hint matching a source error.
func withSourceHint(err error, path string) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w%s", err, hints.ForSourceNotFound(path))
	case errors.Is(err, uwptiles.ErrDecodeSource):
		return fmt.Errorf("%w%s", err, hints.ForUnsupportedSource())
	}
	return err
}

// ensureOutputFolder creates the output folder when missing.
func ensureOutputFolder(dir string) error {
	if _, err := fileutil.EnsureDir(dir); err != nil {
		return fmt.Errorf("%w: %s: %w%s", ErrCreateOutputDir, dir, err, hints.ForOutputDirectory())
	}
	return nil
}

// printPlan lists the resolved specs for --dry-run.
func printPlan(w io.Writer, specs []uwptiles.OutputSpec) {
	for _, s := range specs {
		p := uwptiles.PlacementFor(s)
		fmt.Fprintf(w, "%s\t%dx%d\toverlay %dx%d at %dx%d\n",
			s.OutputPath, s.CanvasWidth, s.CanvasHeight,
			p.OverlayWidth, p.OverlayHeight, p.Left, p.Top)
	}
	fmt.Fprintf(w, "\n%d files\n", len(specs))
}

// printResults outputs render results and returns the failure count.
func printResults(results uwptiles.Results, quiet, verbose bool, env *Environment) int {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Spec.OutputPath, r.Err)
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s %dx%d (%v)\n",
				r.Spec.OutputPath, r.Spec.CanvasWidth, r.Spec.CanvasHeight, r.Duration.Round(time.Millisecond))
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", results.Succeeded(), results.Failed())
	}

	return results.Failed()
}
