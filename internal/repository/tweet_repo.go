package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type TweetRepo struct {
	pool *pgxpool.Pool
}

func NewTweetRepo(pool *pgxpool.Pool) *TweetRepo {
	return &TweetRepo{pool: pool}
}

const tweetColumns = `id, content, owner_id, created_at, updated_at`

func scanTweet(row interface{ Scan(...any) error }) (*model.Tweet, error) {
	var t model.Tweet
	err := row.Scan(&t.ID, &t.Content, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TweetRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	return scanTweet(r.pool.QueryRow(ctx,
		`SELECT `+tweetColumns+` FROM tweets WHERE id = $1`, id))
}

func (r *TweetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Tweet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tweetColumns+` FROM tweets WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var tweets []model.Tweet
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, *t)
	}
	return tweets, translate(rows.Err())
}

func (r *TweetRepo) Insert(ctx context.Context, t *model.Tweet) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tweets (id, content, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)`,
		t.ID, t.Content, t.OwnerID, t.CreatedAt)
	return translate(err)
}

func (r *TweetRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	return scanTweet(r.pool.QueryRow(ctx, `
		UPDATE tweets SET content = $2, updated_at = NOW() WHERE id = $1
		RETURNING `+tweetColumns, id, content))
}

func (r *TweetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
