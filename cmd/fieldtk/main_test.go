package main

import (
	"strings"
	"testing"

	"github.com/fieldtk/fieldtk/geom"
)

func TestParseTriple(t *testing.T) {
	got, err := parseTriple("1,2.5,-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != [3]float64{1, 2.5, -3} {
		t.Errorf("parseTriple = %v, want [1 2.5 -3]", got)
	}

	if _, err := parseTriple("1,2"); err == nil {
		t.Error("expected error for 2 components")
	}
	if _, err := parseTriple("1,2,x"); err == nil {
		t.Error("expected error for non-numeric component")
	}
}

func TestParseTripleWhitespace(t *testing.T) {
	got, err := parseTriple(" 1 , 2 , 3 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != [3]float64{1, 2, 3} {
		t.Errorf("parseTriple = %v, want [1 2 3]", got)
	}
}

func TestReadPoints(t *testing.T) {
	in := `# header comment
0,0,0
1,0,0

# another comment
1,2,3
`
	pts, err := readPoints(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []geom.Point3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 2, Z: 3}}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, pts[i], want[i])
		}
	}
}

func TestReadPointsBadLine(t *testing.T) {
	_, err := readPoints(strings.NewReader("0,0,0\nnot-a-point\n"))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line, got: %v", err)
	}
}

func TestReadValues(t *testing.T) {
	in := "1\n# skip\n2.5\n\n-3\n"
	values, err := readValues(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 2.5, -3}
	if len(values) != len(want) {
		t.Fatalf("got %d values, want %d", len(values), len(want))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, values[i], want[i])
		}
	}
}

func TestWritePointsRoundTrip(t *testing.T) {
	pts := []geom.Point3{{X: 1, Y: 2, Z: 3}, {X: -0.5, Y: 0.25, Z: 1e6}}
	var sb strings.Builder
	writePoints(&sb, pts)

	back, err := readPoints(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back) != len(pts) {
		t.Fatalf("got %d points, want %d", len(back), len(pts))
	}
	for i := range pts {
		if geom.Distance(back[i], pts[i]) > 1e-6 {
			t.Errorf("point %d = %+v, want %+v", i, back[i], pts[i])
		}
	}
}

func TestPlaneBasisOrthonormal(t *testing.T) {
	for _, normal := range []geom.Vector3{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: -2, Y: 0.5, Z: 3}} {
		n, err := geom.Normalize(normal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u, v := planeBasis(n)
		if d := u.Norm(); d < 0.999 || d > 1.001 {
			t.Errorf("normal %+v: |u| = %v, want 1", normal, d)
		}
		if d := v.Norm(); d < 0.999 || d > 1.001 {
			t.Errorf("normal %+v: |v| = %v, want 1", normal, d)
		}
		for name, dot := range map[string]float64{
			"u.n": u.Dot(n), "v.n": v.Dot(n), "u.v": u.Dot(v),
		} {
			if dot > 1e-9 || dot < -1e-9 {
				t.Errorf("normal %+v: %s = %v, want 0", normal, name, dot)
			}
		}
	}
}
