package geom

import (
	"fmt"
	"math"
)

// IsPolygonClockwise reports whether the closed polygon pts winds
// clockwise when viewed from the tip of ref. The winding is taken from
// the vector area (the sum of cross products of consecutive edges about
// the centroid): clockwise means the vector area points against ref.
// Fewer than 3 points return ErrInsufficientData; a zero ref returns
// ErrZeroVector. The polygon is treated as closed; a duplicated final
// point is harmless.
func IsPolygonClockwise(pts []Point3, ref Vector3) (bool, error) {
	if len(pts) < 3 {
		return false, fmt.Errorf("polygon winding needs at least 3 points, got %d: %w", len(pts), ErrInsufficientData)
	}
	if ref.Norm() == 0 {
		return false, fmt.Errorf("polygon winding reference: %w", ErrZeroVector)
	}

	var c Point3
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(pts))
	c = Point3{c.X / n, c.Y / n, c.Z / n}

	var area Vector3
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area = area.Add(p.Sub(c).Cross(q.Sub(c)))
	}
	return area.Dot(ref) < 0, nil
}

// segTriEps guards the Möller–Trumbore determinant and barycentric tests
// against rounding on grazing hits.
const segTriEps = 1e-12

// SegmentPiercesTriangle reports whether the segment from p0 to p1
// intersects the triangle (a, b, c), endpoints inclusive. Segments lying
// in the triangle's plane (the degenerate parallel case) report false.
func SegmentPiercesTriangle(p0, p1, a, b, c Point3) bool {
	dir := p1.Sub(p0)
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	h := dir.Cross(e2)
	det := e1.Dot(h)
	if math.Abs(det) < segTriEps {
		return false
	}

	inv := 1 / det
	s := p0.Sub(a)
	u := inv * s.Dot(h)
	if u < -segTriEps || u > 1+segTriEps {
		return false
	}

	q := s.Cross(e1)
	v := inv * dir.Dot(q)
	if v < -segTriEps || u+v > 1+segTriEps {
		return false
	}

	t := inv * e2.Dot(q)
	return t >= -segTriEps && t <= 1+segTriEps
}
