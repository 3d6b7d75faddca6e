package auth

import (
	"errors"
	"testing"
	"time"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Secure!pass1", nil},
		{"too short", "Ab!cdef", ErrPasswordTooShort},
		{"no uppercase", "secure!pass", ErrPasswordUppercase},
		{"no special", "SecurePass1", ErrPasswordSpecial},
		{"special from full set", "PASSWORD{a}", nil},
		{"comma counts as special", "Password,x", nil},
		{"empty", "", ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePassword(tt.password); !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"ada@example.com", "a.b+c@sub.domain.org", "x_1%y@host.io"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", e, err)
		}
	}
	invalid := []string{"", "plainaddress", "no@tld", "@example.com", "user@.com", "user@host.c"}
	for _, e := range invalid {
		if err := ValidateEmail(e); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("ValidateEmail(%q) = %v, want ErrInvalidEmail", e, err)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secure!pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "Secure!pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "Secure!pass") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "Wrong!pass1") {
		t.Fatal("wrong password accepted")
	}
}

func TestVerificationTokensAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := NewVerificationToken()
		if tok == "" {
			t.Fatal("empty token")
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42, "ada")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "ada" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenIssuerRejectsBadTokens(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	if _, err := issuer.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token: %v", err)
	}

	other := NewTokenIssuer("other-secret", time.Hour)
	token, err := other.Issue(1, "bob")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong-secret token: %v", err)
	}
}

func TestTokenIssuer_EmptySecretIsNotForgeable(t *testing.T) {
	server := NewTokenIssuer("", time.Hour)

	// Its own tokens still work within the process.
	token, err := server.Issue(7, "ada")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := server.Verify(token)
	if err != nil || claims.UserID != 7 {
		t.Fatalf("self-issued token rejected: %v", err)
	}

	// A second issuer built the same way must not share the key, or
	// anyone could mint sessions for an unconfigured deployment.
	attacker := NewTokenIssuer("", time.Hour)
	forged, err := attacker.Issue(1, "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := server.Verify(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatal("token signed with a foreign empty-secret issuer was accepted")
	}
}

func TestTokenIssuerRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	issuer.ttl = -time.Minute

	token, err := issuer.Issue(1, "ada")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: %v", err)
	}
}
