package uwptiles

import (
	"fmt"
	"strings"
)

// Padding ratios used by the default manifest.
const (
	// NoPadding makes the icon fill the whole canvas.
	NoPadding = 1.0

	// TilePadding is the icon ratio for tiles without a name label.
	TilePadding = 0.75

	// NamedTilePadding leaves room for the app name drawn by the shell.
	NamedTilePadding = 0.5
)

// DefaultScales lists the DPI scale factors, in output order.
var DefaultScales = []float64{1, 1.25, 1.5, 2, 4}

// Category describes one family of UWP assets sharing a logical size.
// Categories are static data; padding decisions that depend on runtime
// options go through PaddingRatioFor.
type Category struct {
	ElementName string // File name prefix, e.g. "Square44x44Logo"
	Width       int    // Logical width at scale 1
	Height      int    // Logical height at scale 1

	// Fraction of the canvas occupied by the icon. 0 means no padding.
	PaddingRatioWidth  float64
	PaddingRatioHeight float64

	// Ratios applied instead when tile names are shown. 0 keeps the ratio above.
	NamedPaddingRatioWidth  float64
	NamedPaddingRatioHeight float64

	Targets           []int // Fixed pixel sizes emitted as targetsize-N files
	Unplated          bool  // Also emit _altform-unplated target variants
	GenerateNonScaled bool  // Also emit <ElementName>.png at base size
}

// Manifest is the full asset table: the scale factors and every category.
type Manifest struct {
	Scales     []float64
	Categories []Category
}

// DefaultManifest returns the UWP tile and icon set.
// See https://learn.microsoft.com/windows/apps/design/style/app-icons-and-logos.
func DefaultManifest() Manifest {
	named := func(c Category) Category {
		c.PaddingRatioWidth, c.PaddingRatioHeight = TilePadding, TilePadding
		c.NamedPaddingRatioWidth, c.NamedPaddingRatioHeight = NamedTilePadding, NamedTilePadding
		return c
	}

	return Manifest{
		Scales: append([]float64(nil), DefaultScales...),
		Categories: []Category{
			{
				ElementName:        "SmallTile",
				Width:              71,
				Height:             71,
				PaddingRatioWidth:  TilePadding,
				PaddingRatioHeight: TilePadding,
			},
			named(Category{ElementName: "MedTile", Width: 150, Height: 150}),
			named(Category{ElementName: "Wide310x150Logo", Width: 310, Height: 150}),
			named(Category{ElementName: "LargeTile", Width: 310, Height: 310}),
			{
				ElementName: "SplashScreen",
				Width:       620,
				Height:      300,
			},
			named(Category{
				ElementName: "Square44x44Logo",
				Width:       44,
				Height:      44,
				Targets:     []int{16, 24, 32, 48, 256, 20, 30, 26, 40, 60, 64, 72, 80, 96},
				Unplated:    true,
			}),
			named(Category{ElementName: "Square150x150Logo", Width: 150, Height: 150}),
			{
				ElementName:        "StoreLogo",
				Width:              50,
				Height:             50,
				PaddingRatioWidth:  TilePadding,
				PaddingRatioHeight: TilePadding,
				GenerateNonScaled:  true,
			},
		},
	}
}

// PaddingRatioFor returns the icon-to-canvas ratios for a category.
// Absent ratios default to NoPadding.
func PaddingRatioFor(c Category, namesInTiles bool) (w, h float64) {
	w, h = c.PaddingRatioWidth, c.PaddingRatioHeight
	if namesInTiles {
		if c.NamedPaddingRatioWidth > 0 {
			w = c.NamedPaddingRatioWidth
		}
		if c.NamedPaddingRatioHeight > 0 {
			h = c.NamedPaddingRatioHeight
		}
	}
	if w <= 0 {
		w = NoPadding
	}
	if h <= 0 {
		h = NoPadding
	}
	return w, h
}

// Validate checks that the manifest can be resolved into output specs.
func (m Manifest) Validate() error {
	if len(m.Scales) == 0 {
		return fmt.Errorf("%w: no scales", ErrInvalidManifest)
	}
	for i, s := range m.Scales {
		if s <= 0 {
			return fmt.Errorf("%w: scales[%d] must be positive, got %v", ErrInvalidManifest, i, s)
		}
	}

	for i, c := range m.Categories {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("categories[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single category.
func (c Category) Validate() error {
	if c.ElementName == "" {
		return fmt.Errorf("%w: elementName is required", ErrInvalidManifest)
	}
	if strings.ContainsAny(c.ElementName, "/\\\x00") || strings.Contains(c.ElementName, "..") {
		return fmt.Errorf("%w: elementName %q must be a plain file name", ErrInvalidManifest, c.ElementName)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %s: size must be positive, got %dx%d", ErrInvalidManifest, c.ElementName, c.Width, c.Height)
	}

	ratios := []struct {
		name  string
		value float64
	}{
		{"paddingRatioWidth", c.PaddingRatioWidth},
		{"paddingRatioHeight", c.PaddingRatioHeight},
		{"namedPaddingRatioWidth", c.NamedPaddingRatioWidth},
		{"namedPaddingRatioHeight", c.NamedPaddingRatioHeight},
	}
	for _, r := range ratios {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%w: %s: %s must be between 0 and 1, got %.2f", ErrInvalidManifest, c.ElementName, r.name, r.value)
		}
	}

	for _, t := range c.Targets {
		if t <= 0 {
			return fmt.Errorf("%w: %s: target size must be positive, got %d", ErrInvalidManifest, c.ElementName, t)
		}
	}
	return nil
}
