// Package retouch removes user-marked damage from raster images.
//
// # Overview
//
// retouch fills a masked region of an image with plausible content
// synthesized from the surrounding pixels. The fill is an iterative
// neighbor-averaging diffusion: each pass resolves the boundary ring of
// the damaged region by averaging the valid 8-neighbors of every damaged
// pixel, then moves inward until no damage remains.
//
// # Quick Start
//
//	import "github.com/gogpu/retouch"
//
//	pm := retouch.FromImage(img)
//	mask := retouch.NewMask(pm.Width(), pm.Height())
//	mask.PaintStroke([]retouch.Point{{X: 40, Y: 40}, {X: 120, Y: 90}}, 12)
//
//	res, err := retouch.Fill(pm, mask)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Complete() {
//	    log.Printf("%d pixels could not be filled", res.Unresolved)
//	}
//	_ = pm.SavePNG("fixed.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixmap, Mask, Fill, FillResult
//   - Internal: parallel (worker pool), imageio (decode/encode helpers)
//   - CLI: cmd/retouch
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Behavior
//
// Fill mutates both buffers in place and consumes the mask destructively:
// every resolved pixel has its mask alpha cleared. Pathological masks
// (for example an image that is damaged everywhere) terminate early with
// a partial result rather than an error; see FillResult.
package retouch

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
