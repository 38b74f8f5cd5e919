package retouch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Fill errors.
var (
	// ErrDimensionMismatch is returned when the pixmap and mask dimensions differ.
	ErrDimensionMismatch = errors.New("retouch: pixmap and mask dimensions differ")

	// ErrShortBuffer is returned when a buffer is shorter than width*height*4.
	ErrShortBuffer = errors.New("retouch: buffer shorter than width*height*4")

	// ErrNilBuffer is returned when the pixmap or mask is nil.
	ErrNilBuffer = errors.New("retouch: nil buffer")
)

// FillStatus describes how a fill terminated.
type FillStatus int

const (
	// StatusResolved means every damaged pixel was filled.
	StatusResolved FillStatus = iota

	// StatusPartial means some damaged pixels remain: either a pass made
	// no progress (every remaining pixel is surrounded by damage) or the
	// pass budget ran out. Unresolved pixels keep their original color
	// and their nonzero mask alpha.
	StatusPartial
)

// String returns a human-readable status name.
func (s FillStatus) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusPartial:
		return "partial"
	default:
		return fmt.Sprintf("FillStatus(%d)", int(s))
	}
}

// FillResult reports the outcome of a Fill call.
//
// A partial fill is a normal result, not an error: the engine always
// returns a best-effort buffer. Callers that need full resolution should
// check Complete.
type FillResult struct {
	// Pixels is the filled buffer, the same one passed to Fill.
	Pixels *Pixmap

	// Status distinguishes a complete fill from a partial one.
	Status FillStatus

	// Passes is the number of diffusion passes executed.
	Passes int

	// Resolved is the number of damaged pixels that were filled.
	Resolved int

	// Unresolved is the number of damaged pixels that remain.
	Unresolved int
}

// Complete reports whether every damaged pixel was resolved.
func (r *FillResult) Complete() bool {
	return r.Status == StatusResolved
}

// damagedPixel is one entry of the working set built by the damage scan.
// idx is (y*width + x) * 4, valid in both the pixel and mask buffers.
type damagedPixel struct {
	x, y   int
	idx    int
	solved bool
}

// Fill replaces the damaged region of pixels, as marked by mask, with
// values diffused inward from the region boundary. Both buffers are
// mutated in place: resolved pixels get their averaged color and full
// opacity, and their mask alpha is cleared.
//
// Each pass resolves every unsolved damaged pixel that has at least one
// valid (unmasked) pixel among its in-bounds 8-neighbors, setting its
// RGB channels to the unweighted mean of those neighbors. Pixels
// resolved within a pass only become valid input for the next pass, so
// the result does not depend on iteration order.
//
// Fill fails fast with ErrNilBuffer, ErrDimensionMismatch or
// ErrShortBuffer before touching either buffer.
func Fill(pixels *Pixmap, mask *Mask, opts ...FillOption) (*FillResult, error) {
	return FillContext(context.Background(), pixels, mask, opts...)
}

// FillContext is Fill with cooperative cancellation. The context is
// checked once per pass; on cancellation the partial result accumulated
// so far is returned together with the context's error. Pixels resolved
// before the cancellation keep their filled values.
func FillContext(ctx context.Context, pixels *Pixmap, mask *Mask, opts ...FillOption) (*FillResult, error) {
	if pixels == nil || mask == nil {
		return nil, ErrNilBuffer
	}
	if pixels.width != mask.width || pixels.height != mask.height {
		return nil, fmt.Errorf("%w: pixmap %dx%d, mask %dx%d",
			ErrDimensionMismatch, pixels.width, pixels.height, mask.width, mask.height)
	}
	need := pixels.width * pixels.height * 4
	if len(pixels.data) < need {
		return nil, fmt.Errorf("%w: pixmap has %d bytes, need %d", ErrShortBuffer, len(pixels.data), need)
	}
	if len(mask.data) < need {
		return nil, fmt.Errorf("%w: mask has %d bytes, need %d", ErrShortBuffer, len(mask.data), need)
	}

	o := defaultFillOptions()
	for _, opt := range opts {
		opt(&o)
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	work := scanDamage(mask)
	res := &FillResult{Pixels: pixels}
	if len(work) == 0 {
		return res, nil
	}

	var pool *fillPool
	if workers > 1 && len(work) >= minParallelWork {
		pool = newFillPool(workers)
		defer pool.Close()
	}

	remaining := len(work)
	solved := make([]int, 0, remaining)

	for remaining > 0 && res.Passes < o.maxPasses {
		if err := ctx.Err(); err != nil {
			finishFill(res, len(work), remaining)
			return res, fmt.Errorf("retouch: fill canceled after %d passes: %w", res.Passes, err)
		}

		res.Passes++
		solved = solved[:0]
		if pool != nil {
			solved = solvePassParallel(pool, pixels, mask, work, solved)
		} else {
			solved = solveRange(pixels, mask, work, 0, len(work), solved)
		}

		if len(solved) == 0 {
			// Stuck: every remaining damaged pixel is fully surrounded
			// by damage, so no further pass can make progress.
			break
		}

		// Commit the pass: only now do resolved pixels become valid
		// neighbors, keeping every pixel in the pass reading the same
		// mask snapshot.
		for _, i := range solved {
			mask.data[work[i].idx+3] = 0
		}
		remaining -= len(solved)
	}

	finishFill(res, len(work), remaining)
	return res, nil
}

// finishFill fills in the result counters and logs the outcome.
func finishFill(res *FillResult, total, remaining int) {
	res.Resolved = total - remaining
	res.Unresolved = remaining
	if remaining == 0 {
		res.Status = StatusResolved
		Logger().Debug("retouch: fill resolved",
			"passes", res.Passes, "pixels", res.Resolved)
		return
	}
	res.Status = StatusPartial
	Logger().Warn("retouch: partial fill",
		"passes", res.Passes, "resolved", res.Resolved, "unresolved", remaining)
}

// scanDamage walks the mask once in row-major order and builds the
// working set of damaged pixels. The set is never regrown: later passes
// only flip solved bits.
func scanDamage(mask *Mask) []damagedPixel {
	var work []damagedPixel
	w, h := mask.width, mask.height
	for y := 0; y < h; y++ {
		row := y * w * 4
		for x := 0; x < w; x++ {
			idx := row + x*4
			if mask.data[idx+3] > 0 {
				work = append(work, damagedPixel{x: x, y: y, idx: idx})
			}
		}
	}
	return work
}

// solveRange runs one pass over work[lo:hi]. For each unsolved pixel it
// averages the RGB channels of the in-bounds 8-neighbors that are valid
// under the current mask, writes the mean with full opacity, and appends
// the record index to solved. Mask alpha is left untouched; the caller
// commits the pass afterwards.
//
// Disjoint [lo, hi) ranges may run concurrently: the only writes are to
// the range's own pixels and solved bits, and neighbor reads consult
// mask state that no one mutates during the pass.
func solveRange(pixels *Pixmap, mask *Mask, work []damagedPixel, lo, hi int, solved []int) []int {
	w, h := pixels.width, pixels.height
	pix, msk := pixels.data, mask.data

	for i := lo; i < hi; i++ {
		p := &work[i]
		if p.solved {
			continue
		}

		var rSum, gSum, bSum, count int
		for dy := -1; dy <= 1; dy++ {
			ny := p.y + dy
			if ny < 0 || ny >= h {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := p.x + dx
				if nx < 0 || nx >= w {
					continue
				}
				ni := (ny*w + nx) * 4
				if msk[ni+3] != 0 {
					// Still damaged in this pass's snapshot.
					continue
				}
				rSum += int(pix[ni+0])
				gSum += int(pix[ni+1])
				bSum += int(pix[ni+2])
				count++
			}
		}

		if count == 0 {
			// No valid neighbor yet; retried next pass.
			continue
		}

		pix[p.idx+0] = uint8(rSum / count)
		pix[p.idx+1] = uint8(gSum / count)
		pix[p.idx+2] = uint8(bSum / count)
		pix[p.idx+3] = 255
		p.solved = true
		solved = append(solved, i)
	}

	return solved
}
