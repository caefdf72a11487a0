package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentColumns = `id, content, video_id, owner_id, created_at, updated_at`

func scanComment(row interface{ Scan(...any) error }) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.Content, &c.VideoID, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
}

func (r *CommentRepo) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE video_id = $1`, videoID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, translate(rows.Err())
}

func (r *CommentRepo) Insert(ctx context.Context, c *model.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, content, video_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		c.ID, c.Content, c.VideoID, c.OwnerID, c.CreatedAt)
	return translate(err)
}

func (r *CommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx, `
		UPDATE comments SET content = $2, updated_at = NOW() WHERE id = $1
		RETURNING `+commentColumns, id, content))
}

func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
