// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForSourceNotFound returns a hint when an icon or canvas file is missing.
// Relative paths are resolved against the working directory, so say so.
func ForSourceNotFound(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return format("check the file exists and is readable")
	}
	return format("relative paths are resolved from the current directory")
}

// ForUnsupportedSource lists the formats the decoder understands.
func ForUnsupportedSource() string {
	return format("supported formats: " + strings.Join(SupportedFormats, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or use --output-folder")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml or create ~/.config/go-uwptiles/<name>.yaml")
}

// SupportedFormats lists accepted source formats.
var SupportedFormats = []string{"SVG", "PNG", "JPEG", "GIF", "BMP", "TIFF", "WebP"}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
