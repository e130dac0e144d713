package uwptiles

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Raster decoders accepted for icons and canvases.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// sniffLen bounds how much of a source is inspected to detect SVG.
const sniffLen = 1024

type sourceKind int

const (
	kindRaster sourceKind = iota
	kindSVG
)

// Source is an image loaded once and shared read-only by every render.
// Renders decode from the raw bytes; nothing mutates them.
type Source struct {
	name string
	data []byte
	kind sourceKind
}

// LoadSource reads an image file into memory.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided source path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}
	return NewSource(path, data), nil
}

// NewSource wraps in-memory image bytes. The name is only used in errors and logs.
// The caller must not modify data afterwards.
func NewSource(name string, data []byte) *Source {
	kind := kindRaster
	if isSVG(data) {
		kind = kindSVG
	}
	return &Source{name: name, data: data, kind: kind}
}

// Name returns the name the source was created with.
func (s *Source) Name() string {
	return s.name
}

// IsVector reports whether the source is an SVG document.
func (s *Source) IsVector() bool {
	return s.kind == kindSVG
}

// Probe checks that the source decodes without rasterizing it.
func (s *Source) Probe() error {
	if len(s.data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySource, s.name)
	}

	if s.kind == kindSVG {
		_, err := parseSVG(s.name, s.data)
		return err
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(s.data)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeSource, s.name, err)
	}
	return nil
}

// isSVG looks for an <svg element near the start of the document.
// Content is inspected instead of the file extension.
func isSVG(data []byte) bool {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	head = bytes.TrimSpace(head)
	if len(head) == 0 || head[0] != '<' {
		return false
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}
