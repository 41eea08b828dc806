// Package pointset provides order-preserving queries over sequences of
// scalars and 3D points: nearest-value and nearest-point lookups,
// cumulative arc length, centroids and bounds.
//
// Every operation rejects an empty input with ErrEmptyInput rather than
// returning a sentinel value. Ties always break to the first occurrence.
package pointset

import (
	"errors"
	"math"

	"github.com/fieldtk/fieldtk/geom"
)

// ErrEmptyInput is returned when a query is made over an empty sequence.
var ErrEmptyInput = errors.New("pointset: empty input")

// ClosestValueIndex returns the index of the element of values with the
// minimum absolute difference to target.
func ClosestValueIndex(target float64, values []float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	best := 0
	bestDiff := math.Abs(values[0] - target)
	for i, v := range values[1:] {
		if d := math.Abs(v - target); d < bestDiff {
			best = i + 1
			bestDiff = d
		}
	}
	return best, nil
}

// ClosestValue returns the element of values closest to target.
func ClosestValue(target float64, values []float64) (float64, error) {
	i, err := ClosestValueIndex(target, values)
	if err != nil {
		return 0, err
	}
	return values[i], nil
}

// ClosestPointIndex returns the index of the point in pts with minimum
// Euclidean distance to target.
func ClosestPointIndex(target geom.Point3, pts []geom.Point3) (int, error) {
	if len(pts) == 0 {
		return 0, ErrEmptyInput
	}
	best := 0
	bestDist := geom.Distance(target, pts[0])
	for i, p := range pts[1:] {
		if d := geom.Distance(target, p); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best, nil
}

// CumulativeArcLength returns, for each point in pts, the sum of segment
// lengths from the first point to that point. The result has the same
// length as pts, starts at 0, and is non-decreasing. A single point
// yields [0].
func CumulativeArcLength(pts []geom.Point3) ([]float64, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		out[i] = out[i-1] + geom.Distance(pts[i-1], pts[i])
	}
	return out, nil
}

// Centroid returns the arithmetic mean of pts.
func Centroid(pts []geom.Point3) (geom.Point3, error) {
	if len(pts) == 0 {
		return geom.Point3{}, ErrEmptyInput
	}
	var c geom.Point3
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(pts))
	return geom.Point3{X: c.X / n, Y: c.Y / n, Z: c.Z / n}, nil
}

// Bounds returns the axis-aligned bounding box of pts as its min and max
// corners.
func Bounds(pts []geom.Point3) (min, max geom.Point3, err error) {
	if len(pts) == 0 {
		return geom.Point3{}, geom.Point3{}, ErrEmptyInput
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	return min, max, nil
}
