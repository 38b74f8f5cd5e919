// Command retouch fills a masked damage region of an image with content
// diffused inward from the surrounding pixels.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/retouch"
	"github.com/gogpu/retouch/internal/imageio"
)

func main() {
	var (
		input     = flag.String("input", "", "input image (png, jpeg, webp, bmp, tiff, tga)")
		maskPath  = flag.String("mask", "", "mask image marking the damaged region")
		maskMode  = flag.String("mask-channel", "luma", "mask channel: luma (white marks damage) or alpha")
		output    = flag.String("output", "output.png", "output file; format chosen from extension")
		maxPasses = flag.Int("max-passes", retouch.DefaultMaxPasses, "upper bound on diffusion passes")
		workers   = flag.Int("workers", 1, "workers per pass; 0 uses all cores")
		quality   = flag.Int("quality", imageio.DefaultJPEGQuality, "jpeg quality (1-100)")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" || *maskPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		retouch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := imageio.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	maskImg, err := imageio.Load(*maskPath)
	if err != nil {
		log.Fatalf("Failed to load mask: %v", err)
	}

	pm := retouch.FromImage(img)

	var mask *retouch.Mask
	switch *maskMode {
	case "luma":
		mask = retouch.NewMaskFromLuma(maskImg)
	case "alpha":
		mask = retouch.NewMaskFromAlpha(maskImg)
	default:
		log.Fatalf("Unknown -mask-channel %q (want luma or alpha)", *maskMode)
	}

	res, err := retouch.Fill(pm, mask,
		retouch.WithMaxPasses(*maxPasses),
		retouch.WithWorkers(*workers),
	)
	if err != nil {
		log.Fatalf("Fill failed: %v", err)
	}

	if !res.Complete() {
		log.Printf("warning: %d of %d damaged pixels could not be filled",
			res.Unresolved, res.Resolved+res.Unresolved)
	}

	if err := imageio.Save(*output, pm.ToImage(), *quality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Filled %d pixels in %d passes; saved to %s", res.Resolved, res.Passes, *output)
}
