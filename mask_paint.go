package retouch

import "math"

// PaintDot marks a filled circle of the given radius, centered at
// (cx, cy), as damaged. This is the brush primitive: one dab of a round
// brush. Coordinates are in pixels; the dot may extend past the mask
// edge, where it is clipped.
func (m *Mask) PaintDot(cx, cy, radius float64) {
	if radius <= 0 {
		return
	}

	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= m.width {
		maxX = m.width - 1
	}
	if maxY >= m.height {
		maxY = m.height - 1
	}

	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - cy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				m.data[(y*m.width+x)*4+3] = 255
			}
		}
	}
}

// PaintStroke marks a brush stroke through the given points as damaged.
// Dabs are stamped along each segment at half-radius spacing so the
// stroke has no gaps regardless of point spacing. A single point paints
// one dot; an empty slice is a no-op.
func (m *Mask) PaintStroke(pts []Point, radius float64) {
	if len(pts) == 0 || radius <= 0 {
		return
	}

	m.PaintDot(pts[0].X, pts[0].Y, radius)

	spacing := radius / 2
	if spacing < 0.5 {
		spacing = 0.5
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dist := a.Distance(b)
		steps := int(math.Ceil(dist / spacing))
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			p := a.Add(b.Sub(a).Mul(t))
			m.PaintDot(p.X, p.Y, radius)
		}
	}
}
