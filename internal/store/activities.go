package store

import (
	"context"
	"fmt"
)

// SaveActivity records a completed activity for a concept. The data is
// the activity payload serialized as JSON.
func (s *Store) SaveActivity(ctx context.Context, conceptID int64, activityType, data string, score int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO activities (concept_id, activity_type, activity_data, score) VALUES (?, ?, ?, ?)`,
		conceptID, activityType, data, score)
	if err != nil {
		return 0, fmt.Errorf("save activity: %w", err)
	}
	return res.LastInsertId()
}

// ActivityCount returns how many activities were recorded for a concept.
func (s *Store) ActivityCount(ctx context.Context, conceptID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activities WHERE concept_id = ?`, conceptID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("activity count: %w", err)
	}
	return n, nil
}
