// Package repository implements the store interfaces on Postgres via pgx.
// Driver errors are translated into store error kinds at this boundary so
// nothing above it imports pgx.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

// SQLSTATE codes translated to store error kinds.
const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
	codeCheckViolation  = "23514"
)

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", store.ErrConflict, pgErr.ConstraintName)
		case codeFKViolation:
			return fmt.Errorf("%w: %s", store.ErrInvalidReference, pgErr.ConstraintName)
		case codeCheckViolation:
			return fmt.Errorf("%w: %s", store.ErrInvalidArgument, pgErr.ConstraintName)
		}
	}
	return err
}

// New assembles the full store on one connection pool.
func New(pool *pgxpool.Pool) *store.Store {
	return &store.Store{
		Users:         NewUserRepo(pool),
		Videos:        NewVideoRepo(pool),
		Comments:      NewCommentRepo(pool),
		Likes:         NewLikeRepo(pool),
		Subscriptions: NewSubscriptionRepo(pool),
		Playlists:     NewPlaylistRepo(pool),
		Tweets:        NewTweetRepo(pool),
	}
}
