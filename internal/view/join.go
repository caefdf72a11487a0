package view

import (
	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
)

// collectIDs extracts the key of every row, deduplicated, preserving first
// appearance order so batched store lookups stay deterministic.
func collectIDs[T any](rows []T, key func(T) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	out := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		id := key(r)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// indexBy builds a to-one join index: later duplicates win, which cannot
// happen for primary-key lookups.
func indexBy[T any, K comparable](rows []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(rows))
	for _, r := range rows {
		out[key(r)] = r
	}
	return out
}

// groupBy builds a to-many join index, preserving row order within a group.
func groupBy[T any, K comparable](rows []T, key func(T) K) map[K][]T {
	out := make(map[K][]T, len(rows))
	for _, r := range rows {
		k := key(r)
		out[k] = append(out[k], r)
	}
	return out
}

// ownerOf collapses the to-one user join to a projected Owner; nil when the
// referenced user does not exist (dangling reference).
func ownerOf(users map[uuid.UUID]model.User, id uuid.UUID) *Owner {
	u, ok := users[id]
	if !ok {
		return nil
	}
	return &Owner{ID: u.ID, Username: u.Username, FullName: u.FullName, Avatar: u.Avatar}
}

// likedBy reports whether the viewer appears in the joined like rows.
// An anonymous viewer (uuid.Nil) is never a liker.
func likedBy(likes []model.Like, viewer uuid.UUID) bool {
	if viewer == uuid.Nil {
		return false
	}
	for _, l := range likes {
		if l.LikedBy == viewer {
			return true
		}
	}
	return false
}
