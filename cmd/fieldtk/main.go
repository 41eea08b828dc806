// Command fieldtk runs geometry and statistics analyses over point and
// value files: least-squares plane fitting, streaming statistics, circle
// generation and arc-length measurement. Results can optionally be
// recorded to a local sqlite runs database and rendered as PNG scatter
// plots.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/fieldtk/fieldtk/geom"
	"github.com/fieldtk/fieldtk/internal/runstore"
	"github.com/fieldtk/fieldtk/pointset"
	"github.com/fieldtk/fieldtk/runstats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "fit-plane":
		handleFitPlane(os.Args[2:])
	case "stats":
		handleStats(os.Args[2:])
	case "circle":
		handleCircle(os.Args[2:])
	case "arclen":
		handleArcLen(os.Args[2:])
	case "runs":
		handleRuns(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fieldtk - geometry and statistics analyses over point files

Usage: fieldtk <command> [flags]

Commands:
  fit-plane   Fit a least-squares plane to a CSV point file
  stats       Streaming mean/variance/stddev of a CSV value file
  circle      Generate points around a 3D circle
  arclen      Cumulative arc length along a CSV polyline
  runs        List recorded analysis runs
  help        Show this help

Point files hold one x,y,z triple per line; value files hold one number
per line. Blank lines and lines starting with # are skipped.

Examples:
  fieldtk fit-plane -in points.csv -db runs.db -plot fit.png
  fieldtk stats -in speeds.csv
  fieldtk circle -center 0,0,0 -normal 0,0,1 -radius 1 -n 25
  fieldtk arclen -in path.csv`)
}

func handleFitPlane(args []string) {
	fs := flag.NewFlagSet("fit-plane", flag.ExitOnError)
	in := fs.String("in", "", "CSV point file (required)")
	dbPath := fs.String("db", "", "Record the fit to this runs database")
	plotPath := fs.String("plot", "", "Render an in-plane scatter of the points to this PNG")
	fs.Parse(args)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required")
		fs.Usage()
		os.Exit(1)
	}

	pts, err := readPointsFile(*in)
	if err != nil {
		log.Fatalf("read points: %v", err)
	}

	pl, err := geom.FitPlaneToPoints(pts)
	if err != nil {
		log.Fatalf("fit plane: %v", err)
	}

	// RMS of the signed residuals measures fit quality.
	var sq runstats.Stats
	for _, p := range pts {
		r := pl.Eval(p)
		sq.Push(r * r)
	}
	meanSq, err := sq.Mean()
	if err != nil {
		log.Fatalf("residuals: %v", err)
	}
	rms := math.Sqrt(meanSq)

	fmt.Printf("plane: %+.6f x %+.6f y %+.6f z %+.6f = 0\n", pl.A, pl.B, pl.C, pl.D)
	fmt.Printf("points: %d  rms residual: %.6g\n", len(pts), rms)

	if *dbPath != "" {
		store, err := runstore.Open(*dbPath)
		if err != nil {
			log.Fatalf("open runs database: %v", err)
		}
		defer store.Close()
		id, err := store.RecordPlaneFit(*in, pl, len(pts), rms)
		if err != nil {
			log.Fatalf("record plane fit: %v", err)
		}
		fmt.Printf("recorded run %s\n", id)
	}

	if *plotPath != "" {
		if err := savePlaneScatter(pts, pl, *plotPath); err != nil {
			log.Fatalf("render plot: %v", err)
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}
}

func handleStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	in := fs.String("in", "", "CSV value file (required)")
	dbPath := fs.String("db", "", "Record the summary to this runs database")
	fs.Parse(args)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required")
		fs.Usage()
		os.Exit(1)
	}

	values, err := readValuesFile(*in)
	if err != nil {
		log.Fatalf("read values: %v", err)
	}

	var s runstats.Stats
	for _, v := range values {
		s.Push(v)
	}

	mean, err := s.Mean()
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	variance, err := s.Variance()
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	sd, err := s.StdDev()
	if err != nil {
		log.Fatalf("stats: %v", err)
	}

	fmt.Printf("n: %d  mean: %.6g  variance: %.6g  stddev: %.6g\n", s.Count(), mean, variance, sd)

	if *dbPath != "" {
		store, err := runstore.Open(*dbPath)
		if err != nil {
			log.Fatalf("open runs database: %v", err)
		}
		defer store.Close()
		id, err := store.RecordStats(*in, runstore.StatsSummary{
			NSamples: s.Count(),
			Mean:     mean,
			Variance: variance,
			StdDev:   sd,
		})
		if err != nil {
			log.Fatalf("record stats: %v", err)
		}
		fmt.Printf("recorded run %s\n", id)
	}
}

func handleCircle(args []string) {
	fs := flag.NewFlagSet("circle", flag.ExitOnError)
	centerArg := fs.String("center", "0,0,0", "Circle centre as x,y,z")
	normalArg := fs.String("normal", "0,0,1", "Plane normal as x,y,z")
	radius := fs.Float64("radius", 1, "Circle radius")
	n := fs.Int("n", 25, "Number of points")
	fs.Parse(args)

	center, err := parseTriple(*centerArg)
	if err != nil {
		log.Fatalf("parse -center: %v", err)
	}
	normal, err := parseTriple(*normalArg)
	if err != nil {
		log.Fatalf("parse -normal: %v", err)
	}

	pts, err := geom.BuildCircle3D(
		geom.Point3{X: center[0], Y: center[1], Z: center[2]},
		geom.Vector3{X: normal[0], Y: normal[1], Z: normal[2]},
		*radius, *n,
	)
	if err != nil {
		log.Fatalf("build circle: %v", err)
	}
	writePoints(os.Stdout, pts)
}

func handleArcLen(args []string) {
	fs := flag.NewFlagSet("arclen", flag.ExitOnError)
	in := fs.String("in", "", "CSV point file (required)")
	fs.Parse(args)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required")
		fs.Usage()
		os.Exit(1)
	}

	pts, err := readPointsFile(*in)
	if err != nil {
		log.Fatalf("read points: %v", err)
	}
	lengths, err := pointset.CumulativeArcLength(pts)
	if err != nil {
		log.Fatalf("arc length: %v", err)
	}
	for _, l := range lengths {
		fmt.Printf("%.9g\n", l)
	}
	fmt.Fprintf(os.Stderr, "total length: %.9g over %d points\n", lengths[len(lengths)-1], len(pts))
}

func handleRuns(args []string) {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	dbPath := fs.String("db", "", "Runs database path (required)")
	fs.Parse(args)

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -db flag is required")
		fs.Usage()
		os.Exit(1)
	}

	store, err := runstore.Open(*dbPath)
	if err != nil {
		log.Fatalf("open runs database: %v", err)
	}
	defer store.Close()

	runs, err := store.ListRuns()
	if err != nil {
		log.Fatalf("list runs: %v", err)
	}
	for _, r := range runs {
		fmt.Printf("%s  %-10s  %s  %s\n", r.RunID, r.Kind, r.Created.Format("2006-01-02 15:04:05"), r.Source)
	}
}
