package grid

import (
	"errors"
	"testing"

	"github.com/fieldtk/fieldtk/geom"
)

func TestFromBounds(t *testing.T) {
	min := geom.Point3{X: 0, Y: 0, Z: 0}
	max := geom.Point3{X: 2, Y: 1, Z: 0.5}
	d, origin, err := FromBounds(min, max, 0.5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != (Dims{5, 3, 2}) {
		t.Errorf("dims = %+v, want {5 3 2}", d)
	}
	if origin != min {
		t.Errorf("origin = %+v, want %+v", origin, min)
	}
}

func TestFromBoundsPadding(t *testing.T) {
	d, origin, err := FromBounds(geom.Point3{X: 0, Y: 0, Z: 0}, geom.Point3{X: 1, Y: 1, Z: 1}, 0.5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != (Dims{5, 5, 5}) {
		t.Errorf("dims = %+v, want {5 5 5}", d)
	}
	// Padding straddles the box: origin moves back by res*pad/2.
	want := geom.Point3{X: -0.5, Y: -0.5, Z: -0.5}
	if geom.Distance(origin, want) > 1e-12 {
		t.Errorf("origin = %+v, want %+v", origin, want)
	}
}

func TestFromBoundsErrors(t *testing.T) {
	min := geom.Point3{X: 0, Y: 0, Z: 0}
	max := geom.Point3{X: 1, Y: 1, Z: 1}
	if _, _, err := FromBounds(min, max, 0, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for zero resolution, got %v", err)
	}
	if _, _, err := FromBounds(min, max, 0.5, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for negative padding, got %v", err)
	}
	if _, _, err := FromBounds(max, min, 0.5, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for inverted bounds, got %v", err)
	}
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	d := Dims{4, 3, 5}
	for idx := 0; idx < d.Count(); idx++ {
		i, j, k, ok := d.Coords(idx)
		if !ok {
			t.Fatalf("Coords(%d) reported out of range", idx)
		}
		back, ok := d.Index(i, j, k)
		if !ok {
			t.Fatalf("Index(%d, %d, %d) reported out of range", i, j, k)
		}
		if back != idx {
			t.Errorf("round trip %d -> (%d, %d, %d) -> %d", idx, i, j, k, back)
		}
	}
}

func TestIndexXFastest(t *testing.T) {
	d := Dims{4, 3, 5}
	if idx, ok := d.Index(1, 0, 0); !ok || idx != 1 {
		t.Errorf("Index(1,0,0) = %d, %v, want 1, true", idx, ok)
	}
	if idx, ok := d.Index(0, 1, 0); !ok || idx != 4 {
		t.Errorf("Index(0,1,0) = %d, %v, want 4, true", idx, ok)
	}
	if idx, ok := d.Index(0, 0, 1); !ok || idx != 12 {
		t.Errorf("Index(0,0,1) = %d, %v, want 12, true", idx, ok)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	d := Dims{2, 2, 2}
	for _, ijk := range [][3]int{{-1, 0, 0}, {2, 0, 0}, {0, 2, 0}, {0, 0, 2}} {
		if _, ok := d.Index(ijk[0], ijk[1], ijk[2]); ok {
			t.Errorf("Index%v should be out of range", ijk)
		}
	}
	if _, _, _, ok := d.Coords(-1); ok {
		t.Error("Coords(-1) should be out of range")
	}
	if _, _, _, ok := d.Coords(d.Count()); ok {
		t.Error("Coords(Count()) should be out of range")
	}
}

func TestNeighbours26(t *testing.T) {
	d := Dims{3, 3, 3}

	centre, _ := d.Index(1, 1, 1)
	if got := d.Neighbours26(centre, 1); len(got) != 26 {
		t.Errorf("interior point has %d neighbours, want 26", len(got))
	}

	corner, _ := d.Index(0, 0, 0)
	if got := d.Neighbours26(corner, 1); len(got) != 7 {
		t.Errorf("corner point has %d neighbours, want 7", len(got))
	}

	// The centre must never appear in its own neighbourhood.
	for _, n := range d.Neighbours26(centre, 1) {
		if n == centre {
			t.Error("neighbourhood contains the centre point")
		}
	}
}

func TestNeighbours26Delta2(t *testing.T) {
	d := Dims{5, 5, 5}
	centre, _ := d.Index(2, 2, 2)
	if got := d.Neighbours26(centre, 2); len(got) != 124 {
		t.Errorf("delta=2 interior point has %d neighbours, want 124", len(got))
	}
}

func TestNeighbours26Invalid(t *testing.T) {
	d := Dims{3, 3, 3}
	if got := d.Neighbours26(-1, 1); got != nil {
		t.Errorf("expected nil for out-of-range index, got %v", got)
	}
	if got := d.Neighbours26(0, 0); got != nil {
		t.Errorf("expected nil for delta=0, got %v", got)
	}
}

func TestPointAt(t *testing.T) {
	d := Dims{3, 3, 3}
	origin := geom.Point3{X: 1, Y: 2, Z: 3}
	idx, _ := d.Index(2, 1, 0)
	p, ok := d.PointAt(origin, 0.5, idx)
	if !ok {
		t.Fatal("PointAt reported out of range")
	}
	want := geom.Point3{X: 2, Y: 2.5, Z: 3}
	if geom.Distance(p, want) > 1e-12 {
		t.Errorf("PointAt = %+v, want %+v", p, want)
	}

	if _, ok := d.PointAt(origin, 0.5, d.Count()); ok {
		t.Error("PointAt past the end should report out of range")
	}
}
