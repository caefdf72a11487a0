package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/model"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

// Composer builds every view variant against the entity store. viewer is
// the verified requester id, or uuid.Nil for anonymous reads; it only
// influences membership flags (isLiked, isSubscribed), never which rows
// are visible.
type Composer struct {
	st *store.Store
}

func NewComposer(st *store.Store) *Composer {
	return &Composer{st: st}
}

func paginate[T any](items []T, p page.Params) (page.Page[T], error) {
	pg, err := page.Paginate(items, p.Page, p.Limit)
	if err != nil {
		return page.Page[T]{}, fmt.Errorf("%w: %v", store.ErrInvalidArgument, err)
	}
	return pg, nil
}

// VideoList is the channel feed: an owner's published videos with owner
// projection and like aggregates, sorted and paginated per request.
func (c *Composer) VideoList(ctx context.Context, ownerID, viewer uuid.UUID, p page.Params) (page.Page[VideoCard], error) {
	videos, err := c.st.Videos.ListByOwner(ctx, ownerID, p.Query)
	if err != nil {
		return page.Page[VideoCard]{}, fmt.Errorf("list videos: %w", err)
	}

	cards, err := c.videoCards(ctx, videos, viewer)
	if err != nil {
		return page.Page[VideoCard]{}, err
	}
	sortVideoCards(cards, p.SortBy, p.SortType)
	return paginate(cards, p)
}

// VideoDetail is the watch-page view: video → owner, video → likes, and the
// depth-3 chain video → comments → comment owners (plus comment likes).
func (c *Composer) VideoDetail(ctx context.Context, videoID, viewer uuid.UUID) (*VideoDetail, error) {
	video, err := c.st.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}

	cards, err := c.videoCards(ctx, []model.Video{*video}, viewer)
	if err != nil {
		return nil, err
	}

	comments, err := c.st.Comments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	items, err := c.commentItems(ctx, comments, viewer)
	if err != nil {
		return nil, err
	}
	sortByTime(items,
		func(i CommentItem) time.Time { return i.CreatedAt },
		func(i CommentItem) uuid.UUID { return i.ID },
		page.SortDesc)

	return &VideoDetail{VideoCard: cards[0], Comments: items}, nil
}

// CommentsForVideo is the standalone comment thread, paginated.
func (c *Composer) CommentsForVideo(ctx context.Context, videoID, viewer uuid.UUID, p page.Params) (page.Page[CommentItem], error) {
	comments, err := c.st.Comments.ListByVideo(ctx, videoID)
	if err != nil {
		return page.Page[CommentItem]{}, fmt.Errorf("list comments: %w", err)
	}
	items, err := c.commentItems(ctx, comments, viewer)
	if err != nil {
		return page.Page[CommentItem]{}, err
	}
	sortByTime(items,
		func(i CommentItem) time.Time { return i.CreatedAt },
		func(i CommentItem) uuid.UUID { return i.ID },
		p.SortType)
	return paginate(items, p)
}

// LikedVideos lists the videos the viewer has liked, newest like first.
func (c *Composer) LikedVideos(ctx context.Context, viewer uuid.UUID, p page.Params) (page.Page[VideoCard], error) {
	likes, err := c.st.Likes.ListVideoLikesByUser(ctx, viewer)
	if err != nil {
		return page.Page[VideoCard]{}, fmt.Errorf("list likes: %w", err)
	}

	videoIDs := collectIDs(likes, likeVideoID)
	videos, err := c.st.Videos.ListByIDs(ctx, videoIDs)
	if err != nil {
		return page.Page[VideoCard]{}, fmt.Errorf("list videos: %w", err)
	}

	cards, err := c.videoCards(ctx, videos, viewer)
	if err != nil {
		return page.Page[VideoCard]{}, err
	}
	sortVideoCards(cards, p.SortBy, p.SortType)
	return paginate(cards, p)
}

// ChannelSubscribers lists who subscribes to a channel.
func (c *Composer) ChannelSubscribers(ctx context.Context, channelID uuid.UUID, p page.Params) (page.Page[SubscriberItem], error) {
	subs, err := c.st.Subscriptions.ListByChannel(ctx, channelID)
	if err != nil {
		return page.Page[SubscriberItem]{}, fmt.Errorf("list subscribers: %w", err)
	}

	users, err := c.st.Users.ListByIDs(ctx, collectIDs(subs, func(s model.Subscription) uuid.UUID { return s.SubscriberID }))
	if err != nil {
		return page.Page[SubscriberItem]{}, fmt.Errorf("join subscribers: %w", err)
	}
	idx := indexBy(users, func(u model.User) uuid.UUID { return u.ID })

	items := make([]SubscriberItem, 0, len(subs))
	for _, s := range subs {
		items = append(items, SubscriberItem{
			SubscriptionID: s.ID,
			SubscribedAt:   s.CreatedAt,
			Subscriber:     ownerOf(idx, s.SubscriberID),
		})
	}
	sortByTime(items,
		func(i SubscriberItem) time.Time { return i.SubscribedAt },
		func(i SubscriberItem) uuid.UUID { return i.SubscriptionID },
		p.SortType)
	return paginate(items, p)
}

// SubscribedChannels lists the channels a user subscribes to.
func (c *Composer) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID, p page.Params) (page.Page[SubscribedChannelItem], error) {
	subs, err := c.st.Subscriptions.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		return page.Page[SubscribedChannelItem]{}, fmt.Errorf("list subscriptions: %w", err)
	}

	users, err := c.st.Users.ListByIDs(ctx, collectIDs(subs, func(s model.Subscription) uuid.UUID { return s.ChannelID }))
	if err != nil {
		return page.Page[SubscribedChannelItem]{}, fmt.Errorf("join channels: %w", err)
	}
	idx := indexBy(users, func(u model.User) uuid.UUID { return u.ID })

	items := make([]SubscribedChannelItem, 0, len(subs))
	for _, s := range subs {
		items = append(items, SubscribedChannelItem{
			SubscriptionID: s.ID,
			SubscribedAt:   s.CreatedAt,
			Channel:        ownerOf(idx, s.ChannelID),
		})
	}
	sortByTime(items,
		func(i SubscribedChannelItem) time.Time { return i.SubscribedAt },
		func(i SubscribedChannelItem) uuid.UUID { return i.SubscriptionID },
		p.SortType)
	return paginate(items, p)
}

// ChannelProfile is a user seen as a channel, with subscription aggregates
// and the viewer's membership flag.
func (c *Composer) ChannelProfile(ctx context.Context, channelID, viewer uuid.UUID) (*ChannelProfile, error) {
	u, err := c.st.Users.GetByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("get channel: %w", err)
	}

	subscriberCount, err := c.st.Subscriptions.CountByChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}
	subscribedToCount, err := c.st.Subscriptions.CountBySubscriber(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("count subscriptions: %w", err)
	}

	isSubscribed := false
	if viewer != uuid.Nil {
		_, err := c.st.Subscriptions.Find(ctx, viewer, channelID)
		switch {
		case err == nil:
			isSubscribed = true
		case errors.Is(err, store.ErrNotFound):
		default:
			return nil, fmt.Errorf("find subscription: %w", err)
		}
	}

	return &ChannelProfile{
		Owner:             Owner{ID: u.ID, Username: u.Username, FullName: u.FullName, Avatar: u.Avatar},
		CoverImage:        u.CoverImage,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

// WatchHistory lists the viewer's watched videos, most recent first. The
// store keeps the order; videos deleted since watching drop out silently.
func (c *Composer) WatchHistory(ctx context.Context, userID uuid.UUID, p page.Params) (page.Page[VideoCard], error) {
	ids, err := c.st.Users.WatchHistoryIDs(ctx, userID)
	if err != nil {
		return page.Page[VideoCard]{}, fmt.Errorf("watch history: %w", err)
	}

	videos, err := c.st.Videos.ListByIDs(ctx, ids)
	if err != nil {
		return page.Page[VideoCard]{}, fmt.Errorf("list videos: %w", err)
	}

	cards, err := c.videoCards(ctx, videos, userID)
	if err != nil {
		return page.Page[VideoCard]{}, err
	}

	// Restore watch order: ListByIDs gives no ordering guarantee.
	byID := indexBy(cards, func(v VideoCard) uuid.UUID { return v.ID })
	ordered := make([]VideoCard, 0, len(cards))
	for _, id := range ids {
		if card, ok := byID[id]; ok {
			ordered = append(ordered, card)
		}
	}
	return paginate(ordered, p)
}

// PlaylistDetail is a playlist joined with its member video cards.
func (c *Composer) PlaylistDetail(ctx context.Context, playlistID, viewer uuid.UUID) (*PlaylistDetail, error) {
	pl, err := c.st.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}

	ids, err := c.st.Playlists.VideoIDs(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("playlist videos: %w", err)
	}
	videos, err := c.st.Videos.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	cards, err := c.videoCards(ctx, videos, viewer)
	if err != nil {
		return nil, err
	}
	sortVideoCards(cards, "createdAt", page.SortDesc)

	return &PlaylistDetail{
		ID:          pl.ID,
		Name:        pl.Name,
		Description: pl.Description,
		CreatedAt:   pl.CreatedAt,
		VideoCount:  len(cards),
		Videos:      cards,
	}, nil
}

// UserTweets lists a user's tweets with like aggregates.
func (c *Composer) UserTweets(ctx context.Context, ownerID, viewer uuid.UUID, p page.Params) (page.Page[TweetItem], error) {
	tweets, err := c.st.Tweets.ListByOwner(ctx, ownerID)
	if err != nil {
		return page.Page[TweetItem]{}, fmt.Errorf("list tweets: %w", err)
	}

	users, err := c.st.Users.ListByIDs(ctx, collectIDs(tweets, func(t model.Tweet) uuid.UUID { return t.OwnerID }))
	if err != nil {
		return page.Page[TweetItem]{}, fmt.Errorf("join owners: %w", err)
	}
	ownerIdx := indexBy(users, func(u model.User) uuid.UUID { return u.ID })

	likes, err := c.st.Likes.ListByTweetIDs(ctx, collectIDs(tweets, func(t model.Tweet) uuid.UUID { return t.ID }))
	if err != nil {
		return page.Page[TweetItem]{}, fmt.Errorf("join likes: %w", err)
	}
	likeIdx := groupBy(likes, likeTweetID)

	items := make([]TweetItem, 0, len(tweets))
	for _, t := range tweets {
		tl := likeIdx[t.ID]
		items = append(items, TweetItem{
			ID:        t.ID,
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
			Owner:     ownerOf(ownerIdx, t.OwnerID),
			LikeCount: len(tl),
			IsLiked:   likedBy(tl, viewer),
		})
	}
	sortByTime(items,
		func(i TweetItem) time.Time { return i.CreatedAt },
		func(i TweetItem) uuid.UUID { return i.ID },
		p.SortType)
	return paginate(items, p)
}

// videoCards joins a batch of video rows with their owners and like rows
// and computes the derived fields. One store call per joined collection,
// regardless of batch size.
func (c *Composer) videoCards(ctx context.Context, videos []model.Video, viewer uuid.UUID) ([]VideoCard, error) {
	if len(videos) == 0 {
		return []VideoCard{}, nil
	}

	users, err := c.st.Users.ListByIDs(ctx, collectIDs(videos, func(v model.Video) uuid.UUID { return v.OwnerID }))
	if err != nil {
		return nil, fmt.Errorf("join owners: %w", err)
	}
	ownerIdx := indexBy(users, func(u model.User) uuid.UUID { return u.ID })

	likes, err := c.st.Likes.ListByVideoIDs(ctx, collectIDs(videos, func(v model.Video) uuid.UUID { return v.ID }))
	if err != nil {
		return nil, fmt.Errorf("join likes: %w", err)
	}
	likeIdx := groupBy(likes, likeVideoID)

	cards := make([]VideoCard, 0, len(videos))
	for _, v := range videos {
		vl := likeIdx[v.ID]
		cards = append(cards, VideoCard{
			ID:          v.ID,
			VideoFile:   v.VideoFile,
			Thumbnail:   v.Thumbnail,
			Title:       v.Title,
			Description: v.Description,
			Duration:    v.Duration,
			Views:       v.Views,
			IsPublished: v.IsPublished,
			CreatedAt:   v.CreatedAt,
			Owner:       ownerOf(ownerIdx, v.OwnerID),
			LikeCount:   len(vl),
			IsLiked:     likedBy(vl, viewer),
		})
	}
	return cards, nil
}

// commentItems joins comments with their owners and like rows.
func (c *Composer) commentItems(ctx context.Context, comments []model.Comment, viewer uuid.UUID) ([]CommentItem, error) {
	if len(comments) == 0 {
		return []CommentItem{}, nil
	}

	users, err := c.st.Users.ListByIDs(ctx, collectIDs(comments, func(cm model.Comment) uuid.UUID { return cm.OwnerID }))
	if err != nil {
		return nil, fmt.Errorf("join owners: %w", err)
	}
	ownerIdx := indexBy(users, func(u model.User) uuid.UUID { return u.ID })

	likes, err := c.st.Likes.ListByCommentIDs(ctx, collectIDs(comments, func(cm model.Comment) uuid.UUID { return cm.ID }))
	if err != nil {
		return nil, fmt.Errorf("join likes: %w", err)
	}
	likeIdx := groupBy(likes, likeCommentID)

	items := make([]CommentItem, 0, len(comments))
	for _, cm := range comments {
		cl := likeIdx[cm.ID]
		items = append(items, CommentItem{
			ID:        cm.ID,
			Content:   cm.Content,
			CreatedAt: cm.CreatedAt,
			Owner:     ownerOf(ownerIdx, cm.OwnerID),
			LikeCount: len(cl),
			IsLiked:   likedBy(cl, viewer),
		})
	}
	return items, nil
}

// Like rows store their target as a nullable column; grouping keys treat an
// absent target as uuid.Nil, which never matches a real row.
func likeVideoID(l model.Like) uuid.UUID {
	if l.VideoID != nil {
		return *l.VideoID
	}
	return uuid.Nil
}

func likeCommentID(l model.Like) uuid.UUID {
	if l.CommentID != nil {
		return *l.CommentID
	}
	return uuid.Nil
}

func likeTweetID(l model.Like) uuid.UUID {
	if l.TweetID != nil {
		return *l.TweetID
	}
	return uuid.Nil
}
