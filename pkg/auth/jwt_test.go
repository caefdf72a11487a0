package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	userID := uuid.New()

	token, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != userID {
		t.Errorf("subject = %s, want %s", got, userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Minute).Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = NewJWTManager("secret-b", time.Minute).Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, err := m.Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = m.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"case insensitive scheme", "bearer abc", "abc", false},
		{"missing scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr && err == nil {
				t.Error("expected error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
