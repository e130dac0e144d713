package main

// Notes:
// - loadEnvConfig: we test every UWPTILES_* variable, plus malformed numbers
//   and booleans, which are ignored rather than reported.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig and runMain: we test precedence (flags > env > config).
// - Tests use t.Setenv() which prevents t.Parallel().
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-uwptiles/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("UWPTILES_CONFIG", "/etc/tiles.yaml")
		t.Setenv("UWPTILES_ICON_FILE", "icon.svg")
		t.Setenv("UWPTILES_CANVAS_FILE", "bg.png")
		t.Setenv("UWPTILES_OUTPUT_FOLDER", "/out")
		t.Setenv("UWPTILES_WORKERS", "6")
		t.Setenv("UWPTILES_NAMES_IN_TILES", "true")
		t.Setenv("UWPTILES_INCLUDE_UNPLATED", "false")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "/etc/tiles.yaml" {
			t.Errorf("ConfigPath = %q, want /etc/tiles.yaml", cfg.ConfigPath)
		}
		if cfg.IconFile != "icon.svg" || cfg.CanvasFile != "bg.png" {
			t.Errorf("IconFile = %q, CanvasFile = %q", cfg.IconFile, cfg.CanvasFile)
		}
		if cfg.OutputFolder != "/out" {
			t.Errorf("OutputFolder = %q, want /out", cfg.OutputFolder)
		}
		if cfg.Workers != 6 {
			t.Errorf("Workers = %d, want 6", cfg.Workers)
		}
		if cfg.NamesInTiles == nil || !*cfg.NamesInTiles {
			t.Errorf("NamesInTiles = %v, want true", cfg.NamesInTiles)
		}
		if cfg.IncludeUnplated == nil || *cfg.IncludeUnplated {
			t.Errorf("IncludeUnplated = %v, want false", cfg.IncludeUnplated)
		}
	})

	t.Run("malformed values are ignored", func(t *testing.T) {
		t.Setenv("UWPTILES_WORKERS", "-2")
		t.Setenv("UWPTILES_NAMES_IN_TILES", "sometimes")
		t.Setenv("UWPTILES_INCLUDE_UNPLATED", "")

		cfg := loadEnvConfig()

		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
		if cfg.NamesInTiles != nil {
			t.Errorf("NamesInTiles = %v, want nil", *cfg.NamesInTiles)
		}
		if cfg.IncludeUnplated != nil {
			t.Errorf("IncludeUnplated = %v, want nil", *cfg.IncludeUnplated)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("UWPTILES_ICONFILE", "icon.svg")
	t.Setenv("UWPTILES_WORKERS", "2")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "UWPTILES_ICONFILE") {
		t.Errorf("expected warning for UWPTILES_ICONFILE, got %q", out)
	}
	if strings.Contains(out, "UWPTILES_WORKERS") {
		t.Errorf("known variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Input.IconFile = "from-config.svg"
		cfg.Workers = 2

		yes, no := true, false
		applyEnvConfig(&envConfig{
			IconFile:        "from-env.svg",
			OutputFolder:    "env-out",
			Workers:         5,
			NamesInTiles:    &yes,
			IncludeUnplated: &no,
		}, cfg)

		if cfg.Input.IconFile != "from-env.svg" || cfg.Output.Folder != "env-out" || cfg.Workers != 5 {
			t.Errorf("cfg = %+v", cfg)
		}
		if !cfg.NamesInTiles() || cfg.IncludeUnplated() {
			t.Errorf("tiles = names %v, unplated %v", cfg.NamesInTiles(), cfg.IncludeUnplated())
		}
	})

	t.Run("empty env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Input.IconFile = "from-config.svg"
		cfg.Input.CanvasFile = "bg.png"

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Input.IconFile != "from-config.svg" || cfg.Input.CanvasFile != "bg.png" {
			t.Errorf("Input = %+v", cfg.Input)
		}
		if cfg.Output.Folder != config.DefaultOutputFolder || !cfg.IncludeUnplated() {
			t.Errorf("defaults changed: %+v", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_EnvPrecedence - Flags beat env
// ---------------------------------------------------------------------------

func TestRunMain_EnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	icon := writeFile(t, dir, "icon.svg", testIconSVG)

	t.Setenv("UWPTILES_ICON_FILE", icon)
	t.Setenv("UWPTILES_INCLUDE_UNPLATED", "false")

	t.Run("env alone", func(t *testing.T) {
		out := filepath.Join(dir, "env")
		env, stdout, stderr := newTestEnv()

		code := runMain([]string{"uwptiles", "-o", out, "--dry-run"}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", code, stderr)
		}
		if !strings.Contains(stdout.String(), "55 files") {
			t.Errorf("env should drop unplated icons:\n%s", stdout)
		}
	})

	t.Run("flag overrides env", func(t *testing.T) {
		out := filepath.Join(dir, "flag")
		env, stdout, stderr := newTestEnv()

		code := runMain([]string{"uwptiles", "-o", out, "-u", "true", "--dry-run"}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d\nstderr: %s", code, stderr)
		}
		if !strings.Contains(stdout.String(), "69 files") {
			t.Errorf("flag should restore unplated icons:\n%s", stdout)
		}
	})
}
