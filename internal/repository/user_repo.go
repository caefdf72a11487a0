package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, email, full_name, avatar, cover_image,
	password_hash, refresh_token, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Avatar, &u.CoverImage,
		&u.PasswordHash, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByUsernameOrEmail matches either credential, case-insensitively.
func (r *UserRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($2)`,
		username, email))
}

func (r *UserRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, translate(rows.Err())
}

func (r *UserRepo) Insert(ctx context.Context, u *model.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, email, full_name, avatar, cover_image, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		u.ID, u.Username, u.Email, u.FullName, u.Avatar, u.CoverImage, u.PasswordHash, u.CreatedAt)
	return translate(err)
}

// UpdateFields applies non-nil profile fields and returns the updated row.
func (r *UserRepo) UpdateFields(ctx context.Context, id uuid.UUID, upd store.UserUpdate) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET
			full_name   = COALESCE($2, full_name),
			avatar      = COALESCE($3, avatar),
			cover_image = COALESCE($4, cover_image),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, upd.FullName, upd.Avatar, upd.CoverImage))
}

func (r *UserRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1`, id, token)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// AddWatchHistory upserts so re-watching refreshes position instead of
// duplicating the row.
func (r *UserRepo) AddWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = NOW()`,
		userID, videoID)
	return translate(err)
}

func (r *UserRepo) WatchHistoryIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT video_id FROM watch_history
		WHERE user_id = $1
		ORDER BY watched_at DESC`, userID)
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
