package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fieldtk/fieldtk/geom"
)

// parseTriple parses "x,y,z" into three floats.
func parseTriple(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		out[i] = v
	}
	return out, nil
}

// readPoints reads one x,y,z triple per line. Blank lines and lines
// starting with # are skipped.
func readPoints(r io.Reader) ([]geom.Point3, error) {
	var pts []geom.Point3
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		t, err := parseTriple(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, geom.Point3{X: t[0], Y: t[1], Z: t[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// readValues reads one float per line with the same comment rules as
// readPoints.
func readValues(r io.Reader) ([]float64, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func readPointsFile(path string) ([]geom.Point3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readPoints(f)
}

func readValuesFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readValues(f)
}

// writePoints emits one x,y,z triple per line.
func writePoints(w io.Writer, pts []geom.Point3) {
	for _, p := range pts {
		fmt.Fprintf(w, "%.9g,%.9g,%.9g\n", p.X, p.Y, p.Z)
	}
}
