package view

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

// Sortable video fields. An unknown sortBy falls back to creation time so
// the order is always total. Zero values (unset titles, zero timestamps)
// compare as the type minimum; ties break by id ascending so that repeated
// requests paginate over a stable order.
func videoFieldCompare(sortBy string) func(a, b VideoCard) int {
	switch sortBy {
	case "title":
		return func(a, b VideoCard) int { return strings.Compare(a.Title, b.Title) }
	case "duration":
		return func(a, b VideoCard) int { return cmp.Compare(a.Duration, b.Duration) }
	case "views":
		return func(a, b VideoCard) int { return cmp.Compare(a.Views, b.Views) }
	case "likeCount":
		return func(a, b VideoCard) int { return cmp.Compare(a.LikeCount, b.LikeCount) }
	default:
		return func(a, b VideoCard) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

func sortVideoCards(cards []VideoCard, sortBy, sortType string) {
	fieldCmp := videoFieldCompare(sortBy)
	desc := sortType != page.SortAsc
	slices.SortStableFunc(cards, func(a, b VideoCard) int {
		c := fieldCmp(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

// sortByTime orders any view slice by a timestamp, newest first when desc,
// with the same id tie-break as video sorting.
func sortByTime[T any](rows []T, at func(T) time.Time, id func(T) uuid.UUID, sortType string) {
	desc := sortType != page.SortAsc
	slices.SortStableFunc(rows, func(a, b T) int {
		c := at(a).Compare(at(b))
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(id(a).String(), id(b).String())
	})
}
