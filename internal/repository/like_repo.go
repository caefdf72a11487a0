package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

const likeColumns = `id, liked_by, video_id, comment_id, tweet_id, created_at`

func scanLike(row interface{ Scan(...any) error }) (*model.Like, error) {
	var l model.Like
	err := row.Scan(&l.ID, &l.LikedBy, &l.VideoID, &l.CommentID, &l.TweetID, &l.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (r *LikeRepo) queryLikes(ctx context.Context, query string, args ...any) ([]model.Like, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var likes []model.Like
	for rows.Next() {
		l, err := scanLike(rows)
		if err != nil {
			return nil, err
		}
		likes = append(likes, *l)
	}
	return likes, translate(rows.Err())
}

func (r *LikeRepo) FindVideoLike(ctx context.Context, likedBy, videoID uuid.UUID) (*model.Like, error) {
	return scanLike(r.pool.QueryRow(ctx,
		`SELECT `+likeColumns+` FROM likes WHERE liked_by = $1 AND video_id = $2`,
		likedBy, videoID))
}

func (r *LikeRepo) FindCommentLike(ctx context.Context, likedBy, commentID uuid.UUID) (*model.Like, error) {
	return scanLike(r.pool.QueryRow(ctx,
		`SELECT `+likeColumns+` FROM likes WHERE liked_by = $1 AND comment_id = $2`,
		likedBy, commentID))
}

func (r *LikeRepo) FindTweetLike(ctx context.Context, likedBy, tweetID uuid.UUID) (*model.Like, error) {
	return scanLike(r.pool.QueryRow(ctx,
		`SELECT `+likeColumns+` FROM likes WHERE liked_by = $1 AND tweet_id = $2`,
		likedBy, tweetID))
}

func (r *LikeRepo) ListByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]model.Like, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	return r.queryLikes(ctx,
		`SELECT `+likeColumns+` FROM likes WHERE video_id = ANY($1)`, videoIDs)
}

func (r *LikeRepo) ListByCommentIDs(ctx context.Context, commentIDs []uuid.UUID) ([]model.Like, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	return r.queryLikes(ctx,
		`SELECT `+likeColumns+` FROM likes WHERE comment_id = ANY($1)`, commentIDs)
}

func (r *LikeRepo) ListByTweetIDs(ctx context.Context, tweetIDs []uuid.UUID) ([]model.Like, error) {
	if len(tweetIDs) == 0 {
		return nil, nil
	}
	return r.queryLikes(ctx,
		`SELECT `+likeColumns+` FROM likes WHERE tweet_id = ANY($1)`, tweetIDs)
}

func (r *LikeRepo) ListVideoLikesByUser(ctx context.Context, likedBy uuid.UUID) ([]model.Like, error) {
	return r.queryLikes(ctx, `
		SELECT `+likeColumns+` FROM likes
		WHERE liked_by = $1 AND video_id IS NOT NULL
		ORDER BY created_at DESC`, likedBy)
}

// Insert relies on the partial unique indexes: a racing duplicate comes
// back as ErrConflict, which the toggle protocol treats as "already liked".
func (r *LikeRepo) Insert(ctx context.Context, l *model.Like) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO likes (id, liked_by, video_id, comment_id, tweet_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.LikedBy, l.VideoID, l.CommentID, l.TweetID, l.CreatedAt)
	return translate(err)
}

func (r *LikeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
