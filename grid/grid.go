// Package grid provides index math for regular structured 3D grids: flat
// index to (i, j, k) mapping, neighbourhood enumeration, and sizing a
// grid to cover a bounding box. It deals only in indices and point
// coordinates; it does not store cell data.
package grid

import (
	"errors"
	"fmt"

	"github.com/fieldtk/fieldtk/geom"
)

// ErrInvalidArgument is returned for non-positive dimensions or
// resolutions and inverted bounds.
var ErrInvalidArgument = errors.New("grid: invalid argument")

// Dims is the point count of a structured grid along each axis. Flat
// indices are X-fastest: idx = i + NX*(j + NY*k).
type Dims struct {
	NX, NY, NZ int
}

// Count returns the total number of grid points.
func (d Dims) Count() int {
	return d.NX * d.NY * d.NZ
}

// FromBounds returns the dims and origin of a grid covering the box
// [min, max] at the given resolution, with pad extra cells per axis. The
// origin is shifted back by half the padding so the padding straddles the
// box. Inverted bounds, a non-positive resolution, or negative padding
// return ErrInvalidArgument.
func FromBounds(min, max geom.Point3, res float64, pad int) (Dims, geom.Point3, error) {
	if res <= 0 {
		return Dims{}, geom.Point3{}, fmt.Errorf("resolution %v must be positive: %w", res, ErrInvalidArgument)
	}
	if pad < 0 {
		return Dims{}, geom.Point3{}, fmt.Errorf("padding %d must be non-negative: %w", pad, ErrInvalidArgument)
	}
	if max.X < min.X || max.Y < min.Y || max.Z < min.Z {
		return Dims{}, geom.Point3{}, fmt.Errorf("inverted bounds: %w", ErrInvalidArgument)
	}

	d := Dims{
		NX: int((max.X-min.X)/res) + 1 + pad,
		NY: int((max.Y-min.Y)/res) + 1 + pad,
		NZ: int((max.Z-min.Z)/res) + 1 + pad,
	}
	shift := res * float64(pad) / 2
	origin := geom.Point3{X: min.X - shift, Y: min.Y - shift, Z: min.Z - shift}
	return d, origin, nil
}

// Index returns the flat index of grid point (i, j, k), or ok=false if
// the coordinates are out of range.
func (d Dims) Index(i, j, k int) (int, bool) {
	if i < 0 || j < 0 || k < 0 || i >= d.NX || j >= d.NY || k >= d.NZ {
		return 0, false
	}
	return i + d.NX*(j+d.NY*k), true
}

// Coords returns the (i, j, k) coordinates of a flat index, or ok=false
// if the index is out of range.
func (d Dims) Coords(idx int) (i, j, k int, ok bool) {
	if idx < 0 || idx >= d.Count() {
		return 0, 0, 0, false
	}
	i = idx % d.NX
	j = (idx / d.NX) % d.NY
	k = idx / (d.NX * d.NY)
	return i, j, k, true
}

// Neighbours26 returns the flat indices of every in-bounds grid point in
// the (2*delta+1)^3 box around idx, excluding idx itself. delta=1 yields
// up to 26 neighbours; boundary points get fewer. An out-of-range idx or
// delta < 1 returns nil.
func (d Dims) Neighbours26(idx, delta int) []int {
	if delta < 1 {
		return nil
	}
	ci, cj, ck, ok := d.Coords(idx)
	if !ok {
		return nil
	}

	out := make([]int, 0, (2*delta+1)*(2*delta+1)*(2*delta+1)-1)
	for dk := -delta; dk <= delta; dk++ {
		for dj := -delta; dj <= delta; dj++ {
			for di := -delta; di <= delta; di++ {
				if di == 0 && dj == 0 && dk == 0 {
					continue
				}
				if n, ok := d.Index(ci+di, cj+dj, ck+dk); ok {
					out = append(out, n)
				}
			}
		}
	}
	return out
}

// PointAt returns the spatial location of a flat grid index for a grid
// anchored at origin with uniform spacing res, or ok=false if the index
// is out of range.
func (d Dims) PointAt(origin geom.Point3, res float64, idx int) (geom.Point3, bool) {
	i, j, k, ok := d.Coords(idx)
	if !ok {
		return geom.Point3{}, false
	}
	return geom.Point3{
		X: origin.X + res*float64(i),
		Y: origin.Y + res*float64(j),
		Z: origin.Z + res*float64(k),
	}, true
}
