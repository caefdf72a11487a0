package middleware

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidateID(t *testing.T) {
	valid := uuid.New()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", valid.String(), false},
		{"trims whitespace", "  " + valid.String() + "  ", false},
		{"empty", "", true},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", true},
		{"not a uuid", "dQw4w9WgXcQ", true},
		{"sql injection", "a'; DROP--", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateID(tt.input, "videoId")
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if !tt.wantErr && got != valid {
				t.Errorf("got %s, want %s", got, valid)
			}
			if tt.wantErr && got != uuid.Nil {
				t.Errorf("error case should return uuid.Nil, got %s", got)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "alice", "alice", false},
		{"valid with separators", "a.l-i_ce9", "a.l-i_ce9", false},
		{"uppercase normalized", "Alice", "alice", false},
		{"trims whitespace", "  alice  ", "alice", false},
		{"empty", "", "", true},
		{"spaces inside", "al ice", "", true},
		{"too long", strings.Repeat("a", MaxUsernameLen+1), "", true},
		{"exactly max", strings.Repeat("a", MaxUsernameLen), strings.Repeat("a", MaxUsernameLen), false},
		{"unicode", "aliçe", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUsername(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "nice video", "nice video", false},
		{"trims whitespace", "  hello  ", "hello", false},
		{"empty", "", "", true},
		{"only whitespace", "   ", "", true},
		{"too long", strings.Repeat("x", MaxContentLen+1), "", true},
		{"exactly max", strings.Repeat("x", MaxContentLen), strings.Repeat("x", MaxContentLen), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateContent(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "My first video", false},
		{"empty", "", true},
		{"only whitespace", "  ", true},
		{"too long", strings.Repeat("t", MaxTitleLen+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg := ValidateTitle(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "watch later", false},
		{"empty", "", true},
		{"too long", strings.Repeat("n", MaxNameLen+1), true},
		{"exactly max", strings.Repeat("n", MaxNameLen), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg := ValidateName(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}
