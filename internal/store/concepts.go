package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Concept is a topic a user has explored in the playground.
type Concept struct {
	ID        int64
	UserID    int64
	Topic     string
	CreatedAt time.Time
}

// CreateConcept records a new topic for the user and returns its id.
func (s *Store) CreateConcept(ctx context.Context, userID int64, topic string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO concepts (user_id, topic) VALUES (?, ?)`, userID, topic)
	if err != nil {
		return 0, fmt.Errorf("create concept: %w", err)
	}
	return res.LastInsertId()
}

// RecentConcepts returns the user's ten most recent concepts, newest first.
func (s *Store) RecentConcepts(ctx context.Context, userID int64) ([]Concept, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, topic, created_at FROM concepts
		 WHERE user_id = ? ORDER BY created_at DESC LIMIT 10`, userID)
	if err != nil {
		return nil, fmt.Errorf("recent concepts: %w", err)
	}
	defer rows.Close()

	var out []Concept
	for rows.Next() {
		var c Concept
		if err := rows.Scan(&c.ID, &c.UserID, &c.Topic, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan concept: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ConceptByTopic finds the user's concept for an exact topic.
func (s *Store) ConceptByTopic(ctx context.Context, userID int64, topic string) (*Concept, error) {
	var c Concept
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, topic, created_at FROM concepts
		 WHERE user_id = ? AND topic = ?`, userID, topic).
		Scan(&c.ID, &c.UserID, &c.Topic, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("concept by topic: %w", err)
	}
	return &c, nil
}

// ClearConcepts removes all of the user's concepts and the activities
// recorded against them.
func (s *Store) ClearConcepts(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM activities WHERE concept_id IN (SELECT id FROM concepts WHERE user_id = ?)`,
		userID); err != nil {
		return fmt.Errorf("clear activities: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM concepts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear concepts: %w", err)
	}
	return nil
}
