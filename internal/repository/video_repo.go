package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoColumns = `id, video_file, thumbnail, title, description, duration,
	views, is_published, owner_id, created_at, updated_at`

func scanVideo(row interface{ Scan(...any) error }) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID, &v.VideoFile, &v.Thumbnail, &v.Title, &v.Description, &v.Duration,
		&v.Views, &v.IsPublished, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func scanVideos(r *VideoRepo, ctx context.Context, query string, args ...any) ([]model.Video, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, translate(rows.Err())
}

func (r *VideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
}

// ListByOwner returns published videos only; unpublished ones are visible
// solely through owner-scoped point lookups.
func (r *VideoRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]model.Video, error) {
	if query != "" {
		return scanVideos(r, ctx, `
			SELECT `+videoColumns+` FROM videos
			WHERE owner_id = $1 AND is_published
			  AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')`,
			ownerID, query)
	}
	return scanVideos(r, ctx, `
		SELECT `+videoColumns+` FROM videos
		WHERE owner_id = $1 AND is_published`, ownerID)
}

func (r *VideoRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return scanVideos(r, ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = ANY($1)`, ids)
}

func (r *VideoRepo) Insert(ctx context.Context, v *model.Video) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO videos (id, video_file, thumbnail, title, description, duration, views, is_published, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		v.ID, v.VideoFile, v.Thumbnail, v.Title, v.Description, v.Duration,
		v.Views, v.IsPublished, v.OwnerID, v.CreatedAt)
	return translate(err)
}

func (r *VideoRepo) UpdateFields(ctx context.Context, id uuid.UUID, upd store.VideoUpdate) (*model.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `
		UPDATE videos SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			thumbnail   = COALESCE($4, thumbnail),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+videoColumns,
		id, upd.Title, upd.Description, upd.Thumbnail))
}

// IncrementViews is the one counter mutation done on a read path; a single
// UPDATE keeps it atomic under concurrent detail fetches.
func (r *VideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `
		UPDATE videos SET views = views + 1 WHERE id = $1
		RETURNING `+videoColumns, id))
}

func (r *VideoRepo) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `
		UPDATE videos SET is_published = $2, updated_at = NOW() WHERE id = $1
		RETURNING `+videoColumns, id, published))
}

func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
