package data

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rampctl/rampctl/pkg/metric"
)

const (
	insertScoreSQL = `INSERT INTO score
		(name, url, host, ramp_up, license, bus_factor, reproducibility, net, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectScoreSQL = `SELECT name, url, host, ramp_up, license, bus_factor, reproducibility, net, latency_ms, created_at
		FROM score
		WHERE name = COALESCE(?, name)
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
)

// SaveScore appends one rating to the registry. Ratings are immutable
// history, never updated in place.
func SaveScore(db *sql.DB, s *metric.ArtifactScore) error {
	if db == nil {
		return errDBNotInitialized
	}
	if s == nil {
		return errors.New("score is required")
	}

	_, err := db.Exec(insertScoreSQL,
		s.Name, s.URL, string(s.Host),
		s.RampUp.Score, s.License.Score, s.BusFactor.Score, s.Reproducibility.Score,
		s.Net, s.LatencyMS, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save score for %s: %w", s.Name, err)
	}

	return nil
}

// GetScores lists stored ratings, newest first, optionally filtered by
// artifact name.
func GetScores(db *sql.DB, name *string, limit int) ([]*metric.ArtifactScore, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.Query(selectScoreSQL, name, limit)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	list := make([]*metric.ArtifactScore, 0)
	for rows.Next() {
		s := &metric.ArtifactScore{
			RampUp:          &metric.Result{},
			License:         &metric.Result{},
			BusFactor:       &metric.Result{},
			Reproducibility: &metric.Result{},
		}
		var host string
		if err := rows.Scan(&s.Name, &s.URL, &host,
			&s.RampUp.Score, &s.License.Score, &s.BusFactor.Score, &s.Reproducibility.Score,
			&s.Net, &s.LatencyMS, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		s.Host = metric.HostKind(host)
		list = append(list, s)
	}

	return list, nil
}
