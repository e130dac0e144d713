package uwptiles

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/draw"
)

// Placement is where the fitted icon lands on the canvas.
type Placement struct {
	OverlayWidth  int
	OverlayHeight int
	Left          int
	Top           int
}

// PlacementFor computes the icon box for a spec: the canvas scaled by the
// padding ratios, centered, all values rounded half away from zero.
func PlacementFor(spec OutputSpec) Placement {
	ow := min(roundDim(float64(spec.CanvasWidth)*spec.PaddingRatioWidth), spec.CanvasWidth)
	oh := min(roundDim(float64(spec.CanvasHeight)*spec.PaddingRatioHeight), spec.CanvasHeight)

	return Placement{
		OverlayWidth:  ow,
		OverlayHeight: oh,
		Left:          int(math.Round(float64(spec.CanvasWidth-ow) / 2)),
		Top:           int(math.Round(float64(spec.CanvasHeight-oh) / 2)),
	}
}

// Fitted rasters expire shortly after use. Boxes that repeat are rendered
// close together in a batch.
const (
	memoExpiration = 5 * time.Second
	memoCleanup    = time.Second
)

// Renderer composites the icon over the canvas for one spec at a time.
// It is safe for concurrent use.
type Renderer struct {
	canvas  *Source
	overlay *Source
	memo    *cache.Cache
	encoder png.Encoder
}

// NewRenderer creates a Renderer over two shared sources.
func NewRenderer(canvas, overlay *Source) *Renderer {
	return newRenderer(canvas, overlay, memoExpiration, memoCleanup)
}

func newRenderer(canvas, overlay *Source, expiration, cleanup time.Duration) *Renderer {
	return &Renderer{
		canvas:  canvas,
		overlay: overlay,
		memo:    cache.New(expiration, cleanup),
		encoder: png.Encoder{CompressionLevel: png.DefaultCompression},
	}
}

// Render writes the PNG for spec, replacing any existing file.
func (r *Renderer) Render(ctx context.Context, spec OutputSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	img, err := r.Compose(spec)
	if err != nil {
		return err
	}

	return r.writePNG(spec.OutputPath, img)
}

// Compose builds the output image for spec without writing it.
func (r *Renderer) Compose(spec OutputSpec) (*image.RGBA, error) {
	p := PlacementFor(spec)

	bg, err := r.fitted(r.canvas, spec.CanvasWidth, spec.CanvasHeight)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	fg, err := r.fitted(r.overlay, p.OverlayWidth, p.OverlayHeight)
	if err != nil {
		return nil, fmt.Errorf("icon: %w", err)
	}

	// Memoized rasters are shared; always draw into a fresh image.
	dst := image.NewRGBA(image.Rect(0, 0, spec.CanvasWidth, spec.CanvasHeight))
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
	overlayRect := image.Rect(p.Left, p.Top, p.Left+p.OverlayWidth, p.Top+p.OverlayHeight)
	draw.Draw(dst, overlayRect, fg, image.Point{}, draw.Over)

	return dst, nil
}

// fitted returns the source fitted to w×h, reusing a recent raster of the same box.
func (r *Renderer) fitted(s *Source, w, h int) (*image.RGBA, error) {
	key := fmt.Sprintf("%p/%dx%d", s, w, h)
	if v, ok := r.memo.Get(key); ok {
		return v.(*image.RGBA), nil
	}

	img, err := s.fit(w, h)
	if err != nil {
		return nil, err
	}
	r.memo.SetDefault(key, img)
	return img, nil
}

// writePNG encodes img to path. A partially written file is removed on failure.
func (r *Renderer) writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) // #nosec G304 -- path built from the output folder and manifest
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteOutput, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := r.encoder.Encode(f, img); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
