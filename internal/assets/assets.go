// Package assets holds files embedded in the binary.
package assets

import (
	_ "embed"
)

// BlankCanvasName names the default canvas in logs and errors.
const BlankCanvasName = "blank.svg"

//go:embed blank.svg
var blankCanvas []byte

// BlankCanvas returns a copy of the transparent default canvas.
func BlankCanvas() []byte {
	return append([]byte(nil), blankCanvas...)
}
