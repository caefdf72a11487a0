package view

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

func card(id byte, title string, views int64, createdAt time.Time) VideoCard {
	var u uuid.UUID
	u[15] = id
	return VideoCard{ID: u, Title: title, Views: views, CreatedAt: createdAt}
}

func ids(cards []VideoCard) []byte {
	out := make([]byte, len(cards))
	for i, c := range cards {
		out[i] = c.ID[15]
	}
	return out
}

func TestSortVideoCards_ViewsDesc(t *testing.T) {
	now := time.Now()
	cards := []VideoCard{
		card(1, "a", 5, now),
		card(2, "b", 50, now),
		card(3, "c", 20, now),
	}

	sortVideoCards(cards, "views", page.SortDesc)

	got := ids(cards)
	want := []byte{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

// A card missing the sort field carries the type's zero value, so it sorts
// to the front ascending and to the back descending.
func TestSortVideoCards_ZeroValueField(t *testing.T) {
	now := time.Now()
	cards := []VideoCard{
		card(1, "beta", 0, now),
		card(2, "", 0, now), // unset title
		card(3, "alpha", 0, now),
	}

	sortVideoCards(cards, "title", page.SortAsc)
	if got := ids(cards); got[0] != 2 {
		t.Errorf("asc order = %v, want the empty title first", got)
	}

	sortVideoCards(cards, "title", page.SortDesc)
	if got := ids(cards); got[2] != 2 {
		t.Errorf("desc order = %v, want the empty title last", got)
	}
}

// Equal sort keys break by id ascending in both directions, keeping the
// order stable across repeated requests.
func TestSortVideoCards_TieBreakByID(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cards := []VideoCard{
		card(3, "same", 10, at),
		card(1, "same", 10, at),
		card(2, "same", 10, at),
	}

	sortVideoCards(cards, "views", page.SortDesc)
	got := ids(cards)
	want := []byte{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	sortVideoCards(cards, "views", page.SortAsc)
	got = ids(cards)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("asc order = %v, want %v", got, want)
		}
	}
}

func TestSortVideoCards_UnknownFieldFallsBackToCreatedAt(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cards := []VideoCard{
		card(1, "old", 0, base),
		card(2, "new", 0, base.Add(time.Hour)),
	}

	sortVideoCards(cards, "nonsense", page.SortDesc)
	if got := ids(cards); got[0] != 2 {
		t.Errorf("order = %v, want newest first", got)
	}
}

func TestSortByTime_Desc(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	items := []CommentItem{
		{ID: uuid.New(), CreatedAt: base},
		{ID: uuid.New(), CreatedAt: base.Add(2 * time.Hour)},
		{ID: uuid.New(), CreatedAt: base.Add(time.Hour)},
	}

	sortByTime(items,
		func(i CommentItem) time.Time { return i.CreatedAt },
		func(i CommentItem) uuid.UUID { return i.ID },
		page.SortDesc)

	if !items[0].CreatedAt.After(items[1].CreatedAt) || !items[1].CreatedAt.After(items[2].CreatedAt) {
		t.Error("comments should be newest first")
	}
}
