package store

import (
	"context"
	"fmt"
	"time"
)

// ChatEntry is one exchange saved to a user's chat history.
type ChatEntry struct {
	ID        int64
	UserID    int64
	Message   string
	Response  string
	CreatedAt time.Time
}

// AppendChat saves a message/response pair to the user's history.
func (s *Store) AppendChat(ctx context.Context, userID int64, message, response string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_history (user_id, message, response) VALUES (?, ?, ?)`,
		userID, message, response)
	if err != nil {
		return fmt.Errorf("append chat: %w", err)
	}
	return nil
}

// RecentChat returns the user's twenty most recent exchanges, newest first.
func (s *Store) RecentChat(ctx context.Context, userID int64) ([]ChatEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, message, response, created_at FROM chat_history
		 WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 20`, userID)
	if err != nil {
		return nil, fmt.Errorf("recent chat: %w", err)
	}
	defer rows.Close()

	var out []ChatEntry
	for rows.Next() {
		var e ChatEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Message, &e.Response, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ClearChat removes the user's entire chat history.
func (s *Store) ClearChat(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM chat_history WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear chat: %w", err)
	}
	return nil
}
