// Package uwptiles generates UWP tile and taskbar icon assets from a source
// icon and an optional background canvas.
//
// # Quick Start
//
// Load the sources once, resolve the manifest into output specs, and run the
// batch:
//
//	icon, err := uwptiles.LoadSource("icon.svg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas := uwptiles.NewSource("blank.svg", blankSVG)
//
//	specs, err := uwptiles.Resolve(uwptiles.DefaultManifest(), uwptiles.ResolveOptions{
//	    OutputDir:       "assets",
//	    IncludeUnplated: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen := uwptiles.NewGenerator(canvas, icon, uwptiles.WithWorkers(4))
//	results := gen.Generate(ctx, specs)
//	if err := results.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Generation Pipeline
//
// Every output file goes through the same stages:
//
//  1. The canvas is fitted ("contain", transparent padding) to the full output size.
//  2. The icon is fitted to the output size multiplied by the padding ratios.
//  3. The icon is composited over the canvas, centered on integer offsets.
//  4. The result is encoded as PNG, replacing any existing file.
//
// SVG sources are rasterized directly at the target box with oksvg; raster
// sources (PNG, JPEG, GIF, BMP, TIFF, WebP) are decoded and scaled with a
// Catmull-Rom filter.
//
// # File Naming
//
// Output names follow the UWP asset convention:
//
//	<ElementName>.scale-<pct>.png
//	<ElementName>.png
//	<ElementName>.targetsize-<N>.png
//	<ElementName>.targetsize-<N>_altform-unplated.png
//
// # Failures
//
// Renders are independent. Generate never stops at the first failure: each
// spec gets its own Result, and Results.Err joins every failure.
package uwptiles
