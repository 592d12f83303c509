package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
)

func TestParseIdentity_RoundTrip(t *testing.T) {
	id := models.Identity{Subject: "user-1", DisplayName: "Ada", Email: "ada@example.com", PhotoURL: "https://example.com/a.png"}
	token, err := GenerateToken(id, "secret", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := NewVerifier("secret").ParseIdentity(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != id {
		t.Errorf("expected %+v, got %+v", id, got)
	}
}

func TestParseIdentity_Rejects(t *testing.T) {
	valid, _ := GenerateToken(models.Identity{Subject: "user-1"}, "secret", time.Minute)
	expired, _ := GenerateToken(models.Identity{Subject: "user-1"}, "secret", -time.Minute)
	noSubject, _ := GenerateToken(models.Identity{}, "secret", time.Minute)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other"},
		{"expired", expired, "secret"},
		{"no subject", noSubject, "secret"},
		{"garbage", "not-a-token", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVerifier(tt.secret).ParseIdentity(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"Bearer ", "", true},
		{"Basic abc", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("BearerToken(%q) = %q, %v", tt.header, got, err)
		}
	}
}
