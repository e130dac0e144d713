package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uwptiles --icon-file <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate UWP tile and taskbar icon assets from an icon and an optional canvas.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --icon-file <path>        Source icon, SVG or raster (required)")
	fmt.Fprintln(w, "  -c, --canvas-file <path>      Background canvas (default: blank)")
	fmt.Fprintln(w, "  -o, --output-folder <path>    Destination folder (default: ./assets)")
	fmt.Fprintln(w, "      --config <name>           Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tiles:")
	fmt.Fprintln(w, "  -n, --names-in-tiles <bool>   Names shown in tiles, adds padding (default: false)")
	fmt.Fprintln(w, "  -u, --include-unplated <bool> Generate unplated taskbar icons (default: true)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Execution:")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel renders (0 = auto)")
	fmt.Fprintln(w, "      --dry-run                 List the files without writing them")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show per-file timing")
	fmt.Fprintln(w, "  -h, --help                    Show this help")
	fmt.Fprintln(w, "      --version                 Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  UWPTILES_CONFIG, UWPTILES_ICON_FILE, UWPTILES_CANVAS_FILE,")
	fmt.Fprintln(w, "  UWPTILES_OUTPUT_FOLDER, UWPTILES_WORKERS, UWPTILES_NAMES_IN_TILES,")
	fmt.Fprintln(w, "  UWPTILES_INCLUDE_UNPLATED")
}
