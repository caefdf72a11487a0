package service

import (
	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

// requireOwner gates every resource mutation: only the owner may modify or
// delete. Compared before any write so a denied request leaves the store
// untouched.
func requireOwner(ownerID, requester uuid.UUID) error {
	if ownerID != requester {
		return store.ErrForbidden
	}
	return nil
}
