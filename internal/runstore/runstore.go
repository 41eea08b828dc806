// Package runstore persists the results of analysis runs (plane fits and
// streaming statistics summaries) to a local sqlite database so they can
// be compared across invocations of the CLI. Library packages never
// depend on it.
package runstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fieldtk/fieldtk/geom"
)

// Store wraps the runs database.
type Store struct {
	*sql.DB
}

// Open opens (creating if needed) the runs database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open runs database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			kind              TEXT NOT NULL,
			source            TEXT,
			created_unix      BIGINT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS plane_fits (
			run_id            TEXT PRIMARY KEY,
			a                 DOUBLE NOT NULL,
			b                 DOUBLE NOT NULL,
			c                 DOUBLE NOT NULL,
			d                 DOUBLE NOT NULL,
			n_points          BIGINT NOT NULL,
			rms_residual      DOUBLE NOT NULL,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
		CREATE TABLE IF NOT EXISTS stats_summaries (
			run_id            TEXT PRIMARY KEY,
			n_samples         BIGINT NOT NULL,
			mean              DOUBLE NOT NULL,
			variance          DOUBLE NOT NULL,
			stddev            DOUBLE NOT NULL,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs schema: %w", err)
	}

	return &Store{db}, nil
}

// Run is one recorded analysis run.
type Run struct {
	RunID   string
	Kind    string // "plane_fit" or "stats"
	Source  string
	Created time.Time
}

func (s *Store) insertRun(kind, source string) (string, error) {
	id := uuid.New().String()
	_, err := s.Exec(
		`INSERT INTO runs (run_id, kind, source, created_unix) VALUES (?, ?, ?, ?)`,
		id, kind, source, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecordPlaneFit stores a fitted plane with its point count and RMS
// residual, returning the new run ID.
func (s *Store) RecordPlaneFit(source string, pl geom.Plane, nPoints int, rmsResidual float64) (string, error) {
	id, err := s.insertRun("plane_fit", source)
	if err != nil {
		return "", err
	}
	_, err = s.Exec(
		`INSERT INTO plane_fits (run_id, a, b, c, d, n_points, rms_residual)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, pl.A, pl.B, pl.C, pl.D, nPoints, rmsResidual,
	)
	if err != nil {
		return "", fmt.Errorf("insert plane fit: %w", err)
	}
	return id, nil
}

// StatsSummary is the queryable form of a recorded statistics run.
type StatsSummary struct {
	NSamples int
	Mean     float64
	Variance float64
	StdDev   float64
}

// RecordStats stores a statistics summary, returning the new run ID.
func (s *Store) RecordStats(source string, sum StatsSummary) (string, error) {
	id, err := s.insertRun("stats", source)
	if err != nil {
		return "", err
	}
	_, err = s.Exec(
		`INSERT INTO stats_summaries (run_id, n_samples, mean, variance, stddev)
		 VALUES (?, ?, ?, ?, ?)`,
		id, sum.NSamples, sum.Mean, sum.Variance, sum.StdDev,
	)
	if err != nil {
		return "", fmt.Errorf("insert stats summary: %w", err)
	}
	return id, nil
}

// GetPlaneFit returns the plane recorded under runID.
func (s *Store) GetPlaneFit(runID string) (geom.Plane, int, float64, error) {
	var pl geom.Plane
	var nPoints int
	var rms float64
	err := s.QueryRow(
		`SELECT a, b, c, d, n_points, rms_residual FROM plane_fits WHERE run_id = ?`,
		runID,
	).Scan(&pl.A, &pl.B, &pl.C, &pl.D, &nPoints, &rms)
	if err != nil {
		return geom.Plane{}, 0, 0, fmt.Errorf("get plane fit %s: %w", runID, err)
	}
	return pl, nPoints, rms, nil
}

// GetStats returns the statistics summary recorded under runID.
func (s *Store) GetStats(runID string) (StatsSummary, error) {
	var sum StatsSummary
	err := s.QueryRow(
		`SELECT n_samples, mean, variance, stddev FROM stats_summaries WHERE run_id = ?`,
		runID,
	).Scan(&sum.NSamples, &sum.Mean, &sum.Variance, &sum.StdDev)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("get stats summary %s: %w", runID, err)
	}
	return sum, nil
}

// ListRuns returns all recorded runs, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	rows, err := s.Query(
		`SELECT run_id, kind, source, created_unix FROM runs ORDER BY created_unix DESC, run_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.RunID, &r.Kind, &r.Source, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Created = time.Unix(created, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
