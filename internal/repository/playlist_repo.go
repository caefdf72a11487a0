package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type PlaylistRepo struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepo(pool *pgxpool.Pool) *PlaylistRepo {
	return &PlaylistRepo{pool: pool}
}

const playlistColumns = `id, name, description, owner_id, created_at, updated_at`

func scanPlaylist(row interface{ Scan(...any) error }) (*model.Playlist, error) {
	var p model.Playlist
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PlaylistRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	return scanPlaylist(r.pool.QueryRow(ctx,
		`SELECT `+playlistColumns+` FROM playlists WHERE id = $1`, id))
}

func (r *PlaylistRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Playlist, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+playlistColumns+` FROM playlists
		WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var playlists []model.Playlist
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *p)
	}
	return playlists, translate(rows.Err())
}

func (r *PlaylistRepo) Insert(ctx context.Context, p *model.Playlist) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO playlists (id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		p.ID, p.Name, p.Description, p.OwnerID, p.CreatedAt)
	return translate(err)
}

func (r *PlaylistRepo) UpdateFields(ctx context.Context, id uuid.UUID, upd store.PlaylistUpdate) (*model.Playlist, error) {
	return scanPlaylist(r.pool.QueryRow(ctx, `
		UPDATE playlists SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+playlistColumns,
		id, upd.Name, upd.Description))
}

func (r *PlaylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// AddVideo: the composite primary key turns a duplicate add into
// ErrConflict, which the service reports as a no-op success.
func (r *PlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2)`,
		playlistID, videoID)
	return translate(err)
}

func (r *PlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`,
		playlistID, videoID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepo) VideoIDs(ctx context.Context, playlistID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT video_id FROM playlist_videos
		WHERE playlist_id = $1 ORDER BY added_at`, playlistID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, translate(err)
		}
		ids = append(ids, id)
	}
	return ids, translate(rows.Err())
}
