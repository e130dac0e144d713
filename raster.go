package uwptiles

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// fit renders the source into a w×h transparent image, scaled to fit
// ("contain") with its aspect ratio preserved and centered.
func (s *Source) fit(w, h int) (*image.RGBA, error) {
	if s.kind == kindSVG {
		return s.fitSVG(w, h)
	}
	return s.fitRaster(w, h)
}

// fitSVG rasterizes the SVG directly at the target box.
// The icon is parsed on every call because the transform is set on it.
func (s *Source) fitSVG(w, h int) (*image.RGBA, error) {
	icon, err := parseSVG(s.name, s.data)
	if err != nil {
		return nil, err
	}

	vb := icon.ViewBox
	box := containRect(vb.W, vb.H, w, h)

	// Map viewBox units onto the box: shift the viewBox origin to 0,0 in
	// SVG units, scale, then move to the box corner in pixels.
	icon.Transform = rasterx.Identity.
		Translate(float64(box.Min.X), float64(box.Min.Y)).
		Scale(float64(box.Dx())/vb.W, float64(box.Dy())/vb.H).
		Translate(-vb.X, -vb.Y)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return dst, nil
}

// parseSVG reads an SVG document. Documents with neither a viewBox nor a
// width and height have no intrinsic size and are rejected.
func parseSVG(name string, data []byte) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeSource, name, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeSource, name, ErrNoSVGSize)
	}
	return icon, nil
}

// fitRaster decodes a bitmap and scales it with Catmull-Rom.
func (s *Source) fitRaster(w, h int) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeSource, s.name, err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", ErrDecodeSource, s.name)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	box := containRect(float64(b.Dx()), float64(b.Dy()), w, h)
	draw.CatmullRom.Scale(dst, box, src, b, draw.Over, nil)

	return dst, nil
}

// containRect returns the largest rectangle with the source aspect ratio that
// fits in w×h, centered. Edges are rounded half away from zero.
func containRect(srcW, srcH float64, w, h int) image.Rectangle {
	scale := math.Min(float64(w)/srcW, float64(h)/srcH)

	cw := min(roundDim(srcW*scale), w)
	ch := min(roundDim(srcH*scale), h)

	x := int(math.Round(float64(w-cw) / 2))
	y := int(math.Round(float64(h-ch) / 2))

	return image.Rect(x, y, x+cw, y+ch)
}
