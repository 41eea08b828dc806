package geom

import (
	"fmt"
	"math"
)

// perpendicular returns a deterministic unit vector orthogonal to the
// unit vector n, built by crossing n with the coordinate axis it is least
// aligned with.
func perpendicular(n Vector3) Vector3 {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	axis := Vector3{X: 1}
	switch {
	case ay <= ax && ay <= az:
		axis = Vector3{Y: 1}
	case az <= ax && az <= ay:
		axis = Vector3{Z: 1}
	}
	u, _ := Normalize(n.Cross(axis))
	return u
}

// BuildCircle3D returns n points evenly spaced by angle around the circle
// of the given radius centred on center, lying in the plane perpendicular
// to normal. The loop is open: the first point is not repeated at the
// end. The starting direction is arbitrary but deterministic for a given
// normal. n < 3 returns ErrInvalidArgument; a zero normal returns
// ErrZeroVector.
func BuildCircle3D(center Point3, normal Vector3, radius float64, n int) ([]Point3, error) {
	if n < 3 {
		return nil, fmt.Errorf("circle needs at least 3 points, got %d: %w", n, ErrInvalidArgument)
	}
	nrm, err := Normalize(normal)
	if err != nil {
		return nil, fmt.Errorf("circle normal: %w", err)
	}

	u := perpendicular(nrm)
	v := nrm.Cross(u)

	pts := make([]Point3, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		theta := float64(i) * step
		offset := u.Scale(radius * math.Cos(theta)).Add(v.Scale(radius * math.Sin(theta)))
		pts[i] = center.Add(offset)
	}
	return pts, nil
}

// PolylineBetween returns n points evenly spaced along the segment from a
// to b, inclusive of both endpoints. n < 2 returns ErrInvalidArgument.
func PolylineBetween(a, b Point3, n int) ([]Point3, error) {
	if n < 2 {
		return nil, fmt.Errorf("polyline needs at least 2 points, got %d: %w", n, ErrInvalidArgument)
	}
	step := b.Sub(a).Scale(1 / float64(n-1))
	pts := make([]Point3, n)
	for i := range pts {
		pts[i] = a.Add(step.Scale(float64(i)))
	}
	pts[n-1] = b // avoid accumulated rounding on the far endpoint
	return pts, nil
}

// PlaneGrid returns the (nu+1) x (nv+1) lattice of points spanning the
// parallelogram with corner origin and edge vectors u and v. Points are
// ordered u-fastest: row j holds origin + (i/nu)u + (j/nv)v for i = 0..nu.
// nu or nv < 1 returns ErrInvalidArgument.
func PlaneGrid(origin Point3, u, v Vector3, nu, nv int) ([]Point3, error) {
	if nu < 1 || nv < 1 {
		return nil, fmt.Errorf("plane grid needs nu, nv >= 1, got %d, %d: %w", nu, nv, ErrInvalidArgument)
	}
	pts := make([]Point3, 0, (nu+1)*(nv+1))
	for j := 0; j <= nv; j++ {
		fv := float64(j) / float64(nv)
		for i := 0; i <= nu; i++ {
			fu := float64(i) / float64(nu)
			pts = append(pts, origin.Add(u.Scale(fu)).Add(v.Scale(fv)))
		}
	}
	return pts, nil
}
