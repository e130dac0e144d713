package uwptiles

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
)

// SpecKind tells which naming rule produced an OutputSpec.
type SpecKind int

const (
	KindScaled         SpecKind = iota // <name>.scale-<pct>.png
	KindNonScaled                      // <name>.png
	KindTarget                         // <name>.targetsize-<N>.png
	KindUnplatedTarget                 // <name>.targetsize-<N>_altform-unplated.png
)

// String returns a short label for logs.
func (k SpecKind) String() string {
	switch k {
	case KindScaled:
		return "scaled"
	case KindNonScaled:
		return "unscaled"
	case KindTarget:
		return "target"
	case KindUnplatedTarget:
		return "unplated"
	default:
		return "unknown"
	}
}

// ResolveOptions holds the run-wide switches that affect which specs exist
// and how they are padded.
type ResolveOptions struct {
	OutputDir       string // Directory joined to every file name
	NamesInTiles    bool   // Use the named padding ratios
	IncludeUnplated bool   // Emit _altform-unplated variants
}

// OutputSpec describes one file to render.
type OutputSpec struct {
	Name               string // File name without directory
	OutputPath         string
	CanvasWidth        int
	CanvasHeight       int
	PaddingRatioWidth  float64
	PaddingRatioHeight float64
	Kind               SpecKind
}

// Validate checks the invariants the renderer relies on.
func (s OutputSpec) Validate() error {
	if s.OutputPath == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidSpec)
	}
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return fmt.Errorf("%w: %s: canvas %dx%d", ErrInvalidSpec, s.OutputPath, s.CanvasWidth, s.CanvasHeight)
	}
	if s.PaddingRatioWidth <= 0 || s.PaddingRatioWidth > 1 ||
		s.PaddingRatioHeight <= 0 || s.PaddingRatioHeight > 1 {
		return fmt.Errorf("%w: %s: padding ratio %.2fx%.2f", ErrInvalidSpec, s.OutputPath, s.PaddingRatioWidth, s.PaddingRatioHeight)
	}
	return nil
}

// Resolve expands the manifest into the flat, deduplicated list of output
// specs. Order follows the manifest: categories, then the unscaled file,
// then scales, then targets.
func Resolve(m Manifest, opts ResolveOptions) ([]OutputSpec, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var specs []OutputSpec
	seen := make(map[string]bool)
	add := func(s OutputSpec) {
		if seen[s.Name] {
			return
		}
		seen[s.Name] = true
		s.OutputPath = filepath.Join(opts.OutputDir, s.Name)
		specs = append(specs, s)
	}

	for _, c := range m.Categories {
		prw, prh := PaddingRatioFor(c, opts.NamesInTiles)

		if c.GenerateNonScaled {
			add(OutputSpec{
				Name:               c.ElementName + ".png",
				CanvasWidth:        c.Width,
				CanvasHeight:       c.Height,
				PaddingRatioWidth:  prw,
				PaddingRatioHeight: prh,
				Kind:               KindNonScaled,
			})
		}

		for _, scale := range m.Scales {
			add(OutputSpec{
				Name:               c.ElementName + ".scale-" + scalePercent(scale) + ".png",
				CanvasWidth:        roundDim(float64(c.Width) * scale),
				CanvasHeight:       roundDim(float64(c.Height) * scale),
				PaddingRatioWidth:  prw,
				PaddingRatioHeight: prh,
				Kind:               KindScaled,
			})
		}

		for _, t := range c.Targets {
			size := strconv.Itoa(t)
			add(OutputSpec{
				Name:               c.ElementName + ".targetsize-" + size + ".png",
				CanvasWidth:        t,
				CanvasHeight:       t,
				PaddingRatioWidth:  NoPadding,
				PaddingRatioHeight: NoPadding,
				Kind:               KindTarget,
			})

			if c.Unplated && opts.IncludeUnplated {
				add(OutputSpec{
					Name:               c.ElementName + ".targetsize-" + size + "_altform-unplated.png",
					CanvasWidth:        t,
					CanvasHeight:       t,
					PaddingRatioWidth:  NoPadding,
					PaddingRatioHeight: NoPadding,
					Kind:               KindUnplatedTarget,
				})
			}
		}
	}

	return specs, nil
}

// roundDim rounds half away from zero and never returns less than 1.
func roundDim(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

// scalePercent formats a scale factor as the integer percentage used in file names.
func scalePercent(scale float64) string {
	return strconv.Itoa(int(math.Round(scale * 100)))
}
