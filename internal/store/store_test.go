package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mindlab.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCreateUser(t *testing.T, s *Store, username, email string) int64 {
	t.Helper()
	id, err := s.CreateUser(context.Background(), username, email, "hash", "token-"+username)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func TestUserLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id := mustCreateUser(t, s, "ada", "ada@example.com")

	u, err := s.UserByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("user by username: %v", err)
	}
	if u.ID != id || u.Email != "ada@example.com" || u.EmailVerified {
		t.Fatalf("unexpected user: %+v", u)
	}

	byToken, err := s.UserByVerificationToken(ctx, "token-ada")
	if err != nil {
		t.Fatalf("user by token: %v", err)
	}
	if byToken.ID != id {
		t.Fatalf("token lookup returned wrong user: %d", byToken.ID)
	}

	if err := s.MarkEmailVerified(ctx, id); err != nil {
		t.Fatalf("mark verified: %v", err)
	}
	u, err = s.UserByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("user by username after verify: %v", err)
	}
	if !u.EmailVerified {
		t.Fatal("user still unverified")
	}
}

func TestUserByUsername_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.UserByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUsernameOrEmailTaken(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "ada", "ada@example.com")

	tests := []struct {
		username, email string
		want            bool
	}{
		{"ada", "other@example.com", true},
		{"other", "ada@example.com", true},
		{"other", "other@example.com", false},
	}
	for _, tt := range tests {
		got, err := s.UsernameOrEmailTaken(ctx, tt.username, tt.email)
		if err != nil {
			t.Fatalf("taken(%q, %q): %v", tt.username, tt.email, err)
		}
		if got != tt.want {
			t.Errorf("taken(%q, %q) = %v, want %v", tt.username, tt.email, got, tt.want)
		}
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "ada", "ada@example.com")
	if _, err := s.CreateUser(ctx, "ada", "dup@example.com", "hash", "tok2"); err == nil {
		t.Fatal("duplicate username accepted")
	}
}

func TestConceptsAndActivities(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	userID := mustCreateUser(t, s, "ada", "ada@example.com")

	conceptID, err := s.CreateConcept(ctx, userID, "photosynthesis")
	if err != nil {
		t.Fatalf("create concept: %v", err)
	}

	c, err := s.ConceptByTopic(ctx, userID, "photosynthesis")
	if err != nil {
		t.Fatalf("concept by topic: %v", err)
	}
	if c.ID != conceptID {
		t.Fatalf("concept id = %d, want %d", c.ID, conceptID)
	}

	if _, err := s.ConceptByTopic(ctx, userID, "gravity"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown topic, got %v", err)
	}

	if _, err := s.SaveActivity(ctx, conceptID, "quiz", `{"score":2}`, 2); err != nil {
		t.Fatalf("save activity: %v", err)
	}
	n, err := s.ActivityCount(ctx, conceptID)
	if err != nil {
		t.Fatalf("activity count: %v", err)
	}
	if n != 1 {
		t.Fatalf("activity count = %d, want 1", n)
	}

	if err := s.ClearConcepts(ctx, userID); err != nil {
		t.Fatalf("clear concepts: %v", err)
	}
	concepts, err := s.RecentConcepts(ctx, userID)
	if err != nil {
		t.Fatalf("recent concepts: %v", err)
	}
	if len(concepts) != 0 {
		t.Fatalf("concepts remain after clear: %d", len(concepts))
	}
	n, err = s.ActivityCount(ctx, conceptID)
	if err != nil {
		t.Fatalf("activity count after clear: %v", err)
	}
	if n != 0 {
		t.Fatalf("activities remain after clear: %d", n)
	}
}

func TestRecentConcepts_LimitTen(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	userID := mustCreateUser(t, s, "ada", "ada@example.com")

	for i := 0; i < 12; i++ {
		if _, err := s.CreateConcept(ctx, userID, "topic"); err != nil {
			t.Fatalf("create concept: %v", err)
		}
	}

	concepts, err := s.RecentConcepts(ctx, userID)
	if err != nil {
		t.Fatalf("recent concepts: %v", err)
	}
	if len(concepts) != 10 {
		t.Fatalf("got %d concepts, want 10", len(concepts))
	}
}

func TestChatHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	userID := mustCreateUser(t, s, "ada", "ada@example.com")
	other := mustCreateUser(t, s, "bob", "bob@example.com")

	for i := 0; i < 25; i++ {
		if err := s.AppendChat(ctx, userID, "q", "a"); err != nil {
			t.Fatalf("append chat: %v", err)
		}
	}
	if err := s.AppendChat(ctx, other, "hello", "Hello!"); err != nil {
		t.Fatalf("append chat for other user: %v", err)
	}

	history, err := s.RecentChat(ctx, userID)
	if err != nil {
		t.Fatalf("recent chat: %v", err)
	}
	if len(history) != 20 {
		t.Fatalf("got %d entries, want 20", len(history))
	}
	for _, e := range history {
		if e.UserID != userID {
			t.Fatalf("history leaked entry for user %d", e.UserID)
		}
	}

	if err := s.ClearChat(ctx, userID); err != nil {
		t.Fatalf("clear chat: %v", err)
	}
	history, err = s.RecentChat(ctx, userID)
	if err != nil {
		t.Fatalf("recent chat after clear: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("entries remain after clear: %d", len(history))
	}

	otherHistory, err := s.RecentChat(ctx, other)
	if err != nil {
		t.Fatalf("recent chat other user: %v", err)
	}
	if len(otherHistory) != 1 {
		t.Fatalf("other user's history affected: %d entries", len(otherHistory))
	}
}
