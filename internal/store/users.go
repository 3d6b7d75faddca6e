package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// User is an account row.
type User struct {
	ID                int64
	Username          string
	Email             string
	PasswordHash      string
	EmailVerified     bool
	VerificationToken string
	CreatedAt         time.Time
}

// CreateUser inserts a new unverified user and returns its id.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash, verificationToken string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password, verification_token) VALUES (?, ?, ?, ?)`,
		username, email, passwordHash, verificationToken)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return res.LastInsertId()
}

// UserByUsername looks a user up by exact username.
func (s *Store) UserByUsername(ctx context.Context, username string) (*User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password, email_verified, COALESCE(verification_token, ''), created_at
		 FROM users WHERE username = ?`, username))
}

// UserByVerificationToken looks a user up by its email verification token.
func (s *Store) UserByVerificationToken(ctx context.Context, token string) (*User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password, email_verified, COALESCE(verification_token, ''), created_at
		 FROM users WHERE verification_token = ?`, token))
}

// MarkEmailVerified flips the verified flag for the given user.
func (s *Store) MarkEmailVerified(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `UPDATE users SET email_verified = 1 WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// UsernameOrEmailTaken reports whether another account already uses the
// username or the email.
func (s *Store) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = ? OR email = ?`, username, email).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check existing user: %w", err)
	}
	return n > 0, nil
}

func (s *Store) scanUser(row *sql.Row) (*User, error) {
	var u User
	var verified int
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &verified, &u.VerificationToken, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.EmailVerified = verified != 0
	return &u, nil
}
