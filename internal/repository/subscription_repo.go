package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
)

type SubscriptionRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepo(pool *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

const subColumns = `id, subscriber_id, channel_id, created_at`

func scanSub(row interface{ Scan(...any) error }) (*model.Subscription, error) {
	var s model.Subscription
	err := row.Scan(&s.ID, &s.SubscriberID, &s.ChannelID, &s.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *SubscriptionRepo) querySubs(ctx context.Context, query string, args ...any) ([]model.Subscription, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var subs []model.Subscription
	for rows.Next() {
		s, err := scanSub(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *s)
	}
	return subs, translate(rows.Err())
}

func (r *SubscriptionRepo) Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*model.Subscription, error) {
	return scanSub(r.pool.QueryRow(ctx,
		`SELECT `+subColumns+` FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`,
		subscriberID, channelID))
}

func (r *SubscriptionRepo) ListByChannel(ctx context.Context, channelID uuid.UUID) ([]model.Subscription, error) {
	return r.querySubs(ctx,
		`SELECT `+subColumns+` FROM subscriptions WHERE channel_id = $1`, channelID)
}

func (r *SubscriptionRepo) ListBySubscriber(ctx context.Context, subscriberID uuid.UUID) ([]model.Subscription, error) {
	return r.querySubs(ctx,
		`SELECT `+subColumns+` FROM subscriptions WHERE subscriber_id = $1`, subscriberID)
}

func (r *SubscriptionRepo) CountByChannel(ctx context.Context, channelID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`, channelID).Scan(&n)
	return n, translate(err)
}

func (r *SubscriptionRepo) CountBySubscriber(ctx context.Context, subscriberID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`, subscriberID).Scan(&n)
	return n, translate(err)
}

func (r *SubscriptionRepo) Insert(ctx context.Context, s *model.Subscription) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)`,
		s.ID, s.SubscriberID, s.ChannelID, s.CreatedAt)
	return translate(err)
}

func (r *SubscriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
