package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-uwptiles/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath      string // UWPTILES_CONFIG: config file path
	IconFile        string // UWPTILES_ICON_FILE: source icon
	CanvasFile      string // UWPTILES_CANVAS_FILE: background canvas
	OutputFolder    string // UWPTILES_OUTPUT_FOLDER: destination folder
	Workers         int    // UWPTILES_WORKERS: parallel renders
	NamesInTiles    *bool  // UWPTILES_NAMES_IN_TILES
	IncludeUnplated *bool  // UWPTILES_INCLUDE_UNPLATED
}

// knownEnvVars lists valid UWPTILES_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"UWPTILES_CONFIG":           true,
	"UWPTILES_ICON_FILE":        true,
	"UWPTILES_CANVAS_FILE":      true,
	"UWPTILES_OUTPUT_FOLDER":    true,
	"UWPTILES_WORKERS":          true,
	"UWPTILES_NAMES_IN_TILES":   true,
	"UWPTILES_INCLUDE_UNPLATED": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("UWPTILES_CONFIG"),
		IconFile:     os.Getenv("UWPTILES_ICON_FILE"),
		CanvasFile:   os.Getenv("UWPTILES_CANVAS_FILE"),
		OutputFolder: os.Getenv("UWPTILES_OUTPUT_FOLDER"),
	}

	if workers := os.Getenv("UWPTILES_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	cfg.NamesInTiles = envBool("UWPTILES_NAMES_IN_TILES")
	cfg.IncludeUnplated = envBool("UWPTILES_INCLUDE_UNPLATED")

	return cfg
}

func envBool(name string) *bool {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized UWPTILES_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "UWPTILES_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.IconFile != "" {
		cfg.Input.IconFile = env.IconFile
	}
	if env.CanvasFile != "" {
		cfg.Input.CanvasFile = env.CanvasFile
	}
	if env.OutputFolder != "" {
		cfg.Output.Folder = env.OutputFolder
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.NamesInTiles != nil {
		cfg.Tiles.NamesInTiles = env.NamesInTiles
	}
	if env.IncludeUnplated != nil {
		cfg.Tiles.IncludeUnplated = env.IncludeUnplated
	}
}
