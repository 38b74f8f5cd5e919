package retouch

// DefaultMaxPasses is the default upper bound on diffusion passes before
// Fill gives up on the remaining damaged pixels. Each pass resolves one
// boundary ring, so the default comfortably covers any region narrower
// than 1000 pixels.
const DefaultMaxPasses = 500

// FillOption configures a Fill call.
// Use functional options to customize Fill behavior.
//
// Example:
//
//	// Default sequential fill
//	res, err := retouch.Fill(pm, mask)
//
//	// Bounded latency, all cores
//	res, err := retouch.Fill(pm, mask,
//	    retouch.WithMaxPasses(64),
//	    retouch.WithWorkers(0))
type FillOption func(*fillOptions)

// fillOptions holds optional configuration for a Fill call.
type fillOptions struct {
	maxPasses int
	workers   int
}

// defaultFillOptions returns the default fill options.
func defaultFillOptions() fillOptions {
	return fillOptions{
		maxPasses: DefaultMaxPasses,
		workers:   1, // sequential unless requested
	}
}

// WithMaxPasses bounds the number of diffusion passes. Each pass resolves
// one ring of the damaged region, so maxPasses trades completeness on
// large regions against worst-case latency on pathological masks.
// Values below 1 are ignored.
func WithMaxPasses(n int) FillOption {
	return func(o *fillOptions) {
		if n >= 1 {
			o.maxPasses = n
		}
	}
}

// WithWorkers runs each pass across n workers. Zero or negative n uses
// all available cores. Results are identical to a sequential fill: within
// a pass every pixel reads only mask state from previous passes, so the
// work can be split freely.
func WithWorkers(n int) FillOption {
	return func(o *fillOptions) {
		o.workers = n
	}
}
