package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	uwptiles "github.com/alnah/go-uwptiles"
	"github.com/alnah/go-uwptiles/internal/fileutil"
	"github.com/alnah/go-uwptiles/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Limits applied by Validate.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxWorkers    = 64
)

// DefaultOutputFolder is where assets go when nothing else is configured.
const DefaultOutputFolder = "./assets"

// Config holds all configuration for a generation run.
type Config struct {
	Input    InputConfig     `yaml:"input"`
	Output   OutputConfig    `yaml:"output"`
	Tiles    TilesConfig     `yaml:"tiles"`
	Workers  int             `yaml:"workers"`  // 0 = auto
	Manifest *ManifestConfig `yaml:"manifest"` // nil = built-in manifest
}

// InputConfig defines the source images.
type InputConfig struct {
	IconFile   string `yaml:"iconFile"`
	CanvasFile string `yaml:"canvasFile"` // Empty = embedded blank canvas
}

// OutputConfig defines where assets are written.
type OutputConfig struct {
	Folder string `yaml:"folder"`
}

// TilesConfig holds the generation switches. Nil means "not set".
type TilesConfig struct {
	NamesInTiles    *bool `yaml:"namesInTiles"`
	IncludeUnplated *bool `yaml:"includeUnplated"`
}

// ManifestConfig replaces the built-in asset table.
type ManifestConfig struct {
	Scales     []float64        `yaml:"scales"` // Empty = default scales
	Categories []CategoryConfig `yaml:"categories"`
}

// CategoryConfig is the YAML form of uwptiles.Category.
type CategoryConfig struct {
	ElementName             string  `yaml:"elementName"`
	Width                   int     `yaml:"width"`
	Height                  int     `yaml:"height"`
	PaddingRatioWidth       float64 `yaml:"paddingRatioWidth"`
	PaddingRatioHeight      float64 `yaml:"paddingRatioHeight"`
	NamedPaddingRatioWidth  float64 `yaml:"namedPaddingRatioWidth"`
	NamedPaddingRatioHeight float64 `yaml:"namedPaddingRatioHeight"`
	Targets                 []int   `yaml:"targets"`
	Unplated                bool    `yaml:"unplated"`
	GenerateNonScaled       bool    `yaml:"generateNonScaled"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Folder: DefaultOutputFolder},
		Tiles: TilesConfig{
			NamesInTiles:    boolPtr(false),
			IncludeUnplated: boolPtr(true),
		},
	}
}

// NamesInTiles returns the configured value, false when unset.
func (c *Config) NamesInTiles() bool {
	return c.Tiles.NamesInTiles != nil && *c.Tiles.NamesInTiles
}

// IncludeUnplated returns the configured value, true when unset.
func (c *Config) IncludeUnplated() bool {
	return c.Tiles.IncludeUnplated == nil || *c.Tiles.IncludeUnplated
}

// BuildManifest returns the manifest to resolve: the configured one, or the
// built-in table when none is configured.
func (c *Config) BuildManifest() uwptiles.Manifest {
	if c.Manifest == nil {
		return uwptiles.DefaultManifest()
	}

	m := uwptiles.Manifest{Scales: c.Manifest.Scales}
	if len(m.Scales) == 0 {
		m.Scales = append([]float64(nil), uwptiles.DefaultScales...)
	}
	for _, cc := range c.Manifest.Categories {
		m.Categories = append(m.Categories, uwptiles.Category{
			ElementName:             cc.ElementName,
			Width:                   cc.Width,
			Height:                  cc.Height,
			PaddingRatioWidth:       cc.PaddingRatioWidth,
			PaddingRatioHeight:      cc.PaddingRatioHeight,
			NamedPaddingRatioWidth:  cc.NamedPaddingRatioWidth,
			NamedPaddingRatioHeight: cc.NamedPaddingRatioHeight,
			Targets:                 append([]int(nil), cc.Targets...),
			Unplated:                cc.Unplated,
			GenerateNonScaled:       cc.GenerateNonScaled,
		})
	}
	return m
}

// Validate checks field lengths, the worker range and the manifest shape.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.iconFile", c.Input.IconFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.canvasFile", c.Input.CanvasFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.folder", c.Output.Folder, MaxPathLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}

	if c.Manifest != nil {
		if len(c.Manifest.Categories) == 0 {
			return fmt.Errorf("%w: manifest.categories: at least one category is required", uwptiles.ErrInvalidManifest)
		}
		if err := c.BuildManifest().Validate(); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Unset fields keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-uwptiles/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-uwptiles", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func boolPtr(b bool) *bool {
	return &b
}
