// Package geom provides value types and pure functions for 3D point and
// vector math: distances, normalisation, angles, least-squares plane
// fitting, projection, and construction of simple point-set primitives
// (circles, polylines, plane grids).
//
// All functions take inputs by value and return new outputs; nothing in
// this package holds shared state, so concurrent callers need no
// coordination.
package geom

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package. Callers can test for them
// with errors.Is after any wrapping.
var (
	// ErrZeroVector is returned when an operation requires a direction
	// but the supplied vector has zero magnitude.
	ErrZeroVector = errors.New("geom: zero-magnitude vector")

	// ErrInsufficientData is returned when a fit is requested over fewer
	// or more degenerate points than the fit needs.
	ErrInsufficientData = errors.New("geom: insufficient data")

	// ErrInvalidArgument is returned for out-of-range counts and other
	// structurally invalid inputs.
	ErrInvalidArgument = errors.New("geom: invalid argument")
)

// Point3 is a location in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Vector3 is a direction and magnitude in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// Sub returns the vector from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns the point displaced from p by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Add returns the component-wise sum v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the component-wise difference v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean magnitude of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// AlignWith flips v so that it points into the same half-space as ref:
// the returned vector satisfies dot(result, ref) >= 0. Useful for forcing
// a fitted plane normal onto a known side.
func (v Vector3) AlignWith(ref Vector3) Vector3 {
	if v.Dot(ref) < 0 {
		return v.Scale(-1)
	}
	return v
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point3) float64 {
	return p.Sub(q).Norm()
}

// DistancesToMany returns the distance from p to each point in pts,
// preserving order. The result has the same length as pts.
func DistancesToMany(p Point3, pts []Point3) []float64 {
	out := make([]float64, len(pts))
	for i, q := range pts {
		out[i] = Distance(p, q)
	}
	return out
}

// Normalize returns v scaled to unit length. It returns ErrZeroVector if
// v has zero magnitude.
func Normalize(v Vector3) (Vector3, error) {
	n := v.Norm()
	if n == 0 {
		return Vector3{}, ErrZeroVector
	}
	return v.Scale(1 / n), nil
}

// AngleBetween returns the angle between a and b in radians, in [0, pi].
// The normalised dot product is clamped to [-1, 1] so floating-point
// overshoot on near-parallel vectors cannot push Acos out of its domain.
// Either input having zero magnitude returns ErrZeroVector.
func AngleBetween(a, b Vector3) (float64, error) {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0, ErrZeroVector
	}
	cos := a.Dot(b) / (na * nb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos), nil
}

// AngleBetweenDegrees is AngleBetween with the result in degrees.
func AngleBetweenDegrees(a, b Vector3) (float64, error) {
	rad, err := AngleBetween(a, b)
	if err != nil {
		return 0, err
	}
	return Deg(rad), nil
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
