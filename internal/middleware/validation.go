package middleware

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Field length limits matching database schema constraints.
const (
	MaxUsernameLen    = 50   // users.username VARCHAR(50)
	MaxEmailLen       = 254  // users.email VARCHAR(254)
	MaxFullNameLen    = 100  // users.full_name VARCHAR(100)
	MaxTitleLen       = 200  // videos.title VARCHAR(200)
	MaxNameLen        = 100  // playlists.name VARCHAR(100)
	MaxContentLen     = 1000 // comments.content / tweets.content
	MaxDescriptionLen = 2000
)

// usernameRe matches lowercase handles: letters, digits, dash, underscore, dot.
var usernameRe = regexp.MustCompile(`^[a-z0-9._-]+$`)

// ValidateID parses a path or body resource id. Returns an error message
// when the value is not a well-formed UUID.
func ValidateID(raw, field string) (uuid.UUID, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, field + " is required"
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, field + " must be a valid id"
	}
	return id, ""
}

// ValidateUsername checks that a username is well-formed and within limits.
func ValidateUsername(username string) (string, string) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return "", "username is required"
	}
	if len(username) > MaxUsernameLen {
		return "", "username must be at most 50 characters"
	}
	if !usernameRe.MatchString(username) {
		return "", "username contains invalid characters"
	}
	return username, ""
}

// ValidateContent trims and bounds free-text content (comments, tweets).
func ValidateContent(content string) (string, string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", "content is required"
	}
	if len(content) > MaxContentLen {
		return "", "content must be at most 1000 characters"
	}
	return content, ""
}

// ValidateTitle trims and bounds a video title.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "title must be at most 200 characters"
	}
	return title, ""
}

// ValidateName trims and bounds a playlist name.
func ValidateName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "name is required"
	}
	if len(name) > MaxNameLen {
		return "", "name must be at most 100 characters"
	}
	return name, ""
}
