package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Plane is the implicit form A·x + B·y + C·z + D = 0 of an infinite flat
// surface. Planes produced by FitPlaneToPoints and NewPlane carry a unit
// normal, so Eval gives signed distance directly.
type Plane struct {
	A, B, C, D float64
}

// NewPlane builds the plane through p with the given normal. The normal
// is normalised; a zero normal returns ErrZeroVector.
func NewPlane(normal Vector3, p Point3) (Plane, error) {
	n, err := Normalize(normal)
	if err != nil {
		return Plane{}, err
	}
	return Plane{n.X, n.Y, n.Z, -(n.X*p.X + n.Y*p.Y + n.Z*p.Z)}, nil
}

// Normal returns the plane's normal vector (A, B, C).
func (pl Plane) Normal() Vector3 {
	return Vector3{pl.A, pl.B, pl.C}
}

// Eval returns A·x + B·y + C·z + D for p. For a unit-normal plane this is
// the signed distance from p to the plane.
func (pl Plane) Eval(p Point3) float64 {
	return pl.A*p.X + pl.B*p.Y + pl.C*p.Z + pl.D
}

// Collinearity threshold for plane fitting: the second singular value of
// the centred point matrix must carry at least this fraction of the first,
// otherwise the points do not span a plane.
const planeFitRankTol = 1e-9

// FitPlaneToPoints computes the least-squares best-fit plane through pts
// by singular value decomposition of the centred coordinate matrix. The
// normal is the direction of smallest variance (the right singular vector
// of the smallest singular value) and has unit length; its sign is
// unconstrained. Use Vector3.AlignWith to impose a reference direction.
//
// Fewer than 3 points, or 3+ points that are collinear or coincident,
// return ErrInsufficientData.
func FitPlaneToPoints(pts []Point3) (Plane, error) {
	if len(pts) < 3 {
		return Plane{}, fmt.Errorf("plane fit needs at least 3 points, got %d: %w", len(pts), ErrInsufficientData)
	}

	var cx, cy, cz float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(pts))
	cx /= n
	cy /= n
	cz /= n

	centred := mat.NewDense(len(pts), 3, nil)
	for i, p := range pts {
		centred.Set(i, 0, p.X-cx)
		centred.Set(i, 1, p.Y-cy)
		centred.Set(i, 2, p.Z-cz)
	}

	var svd mat.SVD
	if ok := svd.Factorize(centred, mat.SVDThinV); !ok {
		return Plane{}, fmt.Errorf("plane fit: SVD failed to converge: %w", ErrInsufficientData)
	}

	sigma := svd.Values(nil)
	if sigma[0] == 0 || sigma[1] < planeFitRankTol*sigma[0] {
		// Rank < 2: points are coincident or collinear.
		return Plane{}, fmt.Errorf("plane fit: points are collinear: %w", ErrInsufficientData)
	}

	var v mat.Dense
	svd.VTo(&v)
	normal := Vector3{v.At(0, 2), v.At(1, 2), v.At(2, 2)}

	return Plane{
		A: normal.X,
		B: normal.Y,
		C: normal.Z,
		D: -(normal.X*cx + normal.Y*cy + normal.Z*cz),
	}, nil
}

// ProjectPointsToPlane orthogonally projects each point onto pl,
// preserving input order and count. Points already on the plane map to
// themselves. A degenerate plane (zero normal) returns ErrZeroVector.
func ProjectPointsToPlane(pts []Point3, pl Plane) ([]Point3, error) {
	n, err := Normalize(pl.Normal())
	if err != nil {
		return nil, fmt.Errorf("project to plane: %w", err)
	}
	// Rescale the offset in case the caller's plane was not unit-normal.
	d := pl.D / pl.Normal().Norm()

	out := make([]Point3, len(pts))
	for i, p := range pts {
		dist := n.X*p.X + n.Y*p.Y + n.Z*p.Z + d
		out[i] = p.Add(n.Scale(-dist))
	}
	return out, nil
}
