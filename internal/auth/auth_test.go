package auth_test

import (
	"testing"
	"time"

	"tradepost/internal/auth"
)

func TestParseSubjectRoundTrip(t *testing.T) {
	tok, err := auth.Mint("s3cret", "user-1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := auth.ParseSubject("s3cret", tok)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "user-1" {
		t.Fatalf("want subject user-1, got %q", sub)
	}
}

func TestParseSubjectWrongSecret(t *testing.T) {
	tok, err := auth.Mint("s3cret", "user-1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ParseSubject("other", tok); err != auth.ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseSubjectExpired(t *testing.T) {
	tok, err := auth.Mint("s3cret", "user-1", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ParseSubject("s3cret", tok); err != auth.ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseSubjectEmptySecret(t *testing.T) {
	tok, err := auth.Mint("s3cret", "user-1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ParseSubject("", tok); err != auth.ErrInvalidToken {
		t.Fatalf("empty secret must reject everything, got %v", err)
	}
}

func TestParseSubjectGarbage(t *testing.T) {
	if _, err := auth.ParseSubject("s3cret", "not.a.jwt"); err != auth.ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
