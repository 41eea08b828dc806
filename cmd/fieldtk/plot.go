package main

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fieldtk/fieldtk/geom"
	"github.com/fieldtk/fieldtk/pointset"
)

// planeBasis returns two orthonormal in-plane directions for a unit
// normal n, chosen deterministically so repeated plots of the same data
// line up.
func planeBasis(n geom.Vector3) (u, v geom.Vector3) {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	axis := geom.Vector3{X: 1}
	switch {
	case ay <= ax && ay <= az:
		axis = geom.Vector3{Y: 1}
	case az <= ax && az <= ay:
		axis = geom.Vector3{Z: 1}
	}
	u, _ = geom.Normalize(n.Cross(axis))
	v = n.Cross(u)
	return u, v
}

// savePlaneScatter projects pts onto pl and renders the in-plane 2D
// scatter to a PNG at path.
func savePlaneScatter(pts []geom.Point3, pl geom.Plane, path string) error {
	projected, err := geom.ProjectPointsToPlane(pts, pl)
	if err != nil {
		return fmt.Errorf("project points: %w", err)
	}
	centre, err := pointset.Centroid(projected)
	if err != nil {
		return fmt.Errorf("centroid: %w", err)
	}

	n, err := geom.Normalize(pl.Normal())
	if err != nil {
		return fmt.Errorf("plane normal: %w", err)
	}
	u, v := planeBasis(n)

	xys := make(plotter.XYs, len(projected))
	for i, p := range projected {
		rel := p.Sub(centre)
		xys[i].X = rel.Dot(u)
		xys[i].Y = rel.Dot(v)
	}

	p := plot.New()
	p.Title.Text = "In-plane scatter"
	p.X.Label.Text = "u"
	p.Y.Label.Text = "v"

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.Radius = vg.Points(2)
	p.Add(scatter)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
