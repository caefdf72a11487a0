package page

import (
	"errors"
	"testing"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_MiddlePage(t *testing.T) {
	pg, err := Paginate(seq(25), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pg.Docs) != 10 {
		t.Errorf("docs = %d, want 10", len(pg.Docs))
	}
	if pg.Docs[0] != 11 || pg.Docs[9] != 20 {
		t.Errorf("window = [%d..%d], want [11..20]", pg.Docs[0], pg.Docs[9])
	}
	if pg.TotalDocs != 25 || pg.TotalPages != 3 {
		t.Errorf("totals = %d/%d, want 25/3", pg.TotalDocs, pg.TotalPages)
	}
	if !pg.HasNextPage || !pg.HasPrevPage {
		t.Errorf("hasNext=%v hasPrev=%v, want true/true", pg.HasNextPage, pg.HasPrevPage)
	}
	if pg.NextPage == nil || *pg.NextPage != 3 {
		t.Errorf("nextPage = %v, want 3", pg.NextPage)
	}
	if pg.PrevPage == nil || *pg.PrevPage != 1 {
		t.Errorf("prevPage = %v, want 1", pg.PrevPage)
	}
	if pg.PagingCounter == nil || *pg.PagingCounter != 11 {
		t.Errorf("pagingCounter = %v, want 11", pg.PagingCounter)
	}
}

func TestPaginate_FirstAndLastPage(t *testing.T) {
	first, err := Paginate(seq(25), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.HasPrevPage {
		t.Error("page 1 should have no previous page")
	}
	if first.PrevPage != nil {
		t.Errorf("prevPage = %v, want nil", first.PrevPage)
	}

	last, err := Paginate(seq(25), 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(last.Docs) != 5 {
		t.Errorf("last page docs = %d, want 5", len(last.Docs))
	}
	if last.HasNextPage {
		t.Error("last page should have no next page")
	}
	if last.NextPage != nil {
		t.Errorf("nextPage = %v, want nil", last.NextPage)
	}
}

func TestPaginate_BeyondLastPage(t *testing.T) {
	pg, err := Paginate(seq(25), 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pg.Docs) != 0 {
		t.Errorf("docs = %d, want 0", len(pg.Docs))
	}
	if pg.HasNextPage {
		t.Error("beyond-last page should have no next page")
	}
	if !pg.HasPrevPage {
		t.Error("beyond-last page should still report a previous page")
	}
	if pg.TotalDocs != 25 || pg.TotalPages != 3 {
		t.Errorf("totals = %d/%d, want 25/3", pg.TotalDocs, pg.TotalPages)
	}
	if pg.PagingCounter != nil {
		t.Errorf("pagingCounter = %v, want nil for empty page", pg.PagingCounter)
	}
}

func TestPaginate_Empty(t *testing.T) {
	pg, err := Paginate([]int{}, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.TotalDocs != 0 || pg.TotalPages != 0 {
		t.Errorf("totals = %d/%d, want 0/0", pg.TotalDocs, pg.TotalPages)
	}
	if pg.HasNextPage || pg.HasPrevPage {
		t.Error("empty result should have no neighbors")
	}
}

func TestPaginate_InvalidArgs(t *testing.T) {
	for _, tc := range []struct {
		name        string
		page, limit int
	}{
		{"zero page", 0, 10},
		{"negative page", -1, 10},
		{"zero limit", 1, 0},
		{"negative limit", 1, -5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Paginate(seq(5), tc.page, tc.limit)
			if !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("err = %v, want ErrInvalidArgs", err)
			}
		})
	}
}

// Walking every page in order must visit each element exactly once.
func TestPaginate_Completeness(t *testing.T) {
	items := seq(23)
	limit := 7

	var collected []int
	for p := 1; ; p++ {
		pg, err := Paginate(items, p, limit)
		if err != nil {
			t.Fatalf("page %d: %v", p, err)
		}
		collected = append(collected, pg.Docs...)
		if !pg.HasNextPage {
			break
		}
	}

	if len(collected) != len(items) {
		t.Fatalf("collected %d items, want %d", len(collected), len(items))
	}
	for i, v := range collected {
		if v != items[i] {
			t.Errorf("collected[%d] = %d, want %d", i, v, items[i])
		}
	}
}

func TestParseParams_Defaults(t *testing.T) {
	p := ParseParams("", "", "", "", "")
	if p.Page != 1 || p.Limit != 10 {
		t.Errorf("page/limit = %d/%d, want 1/10", p.Page, p.Limit)
	}
	if p.SortBy != "createdAt" || p.SortType != SortDesc {
		t.Errorf("sort = %s/%s, want createdAt/desc", p.SortBy, p.SortType)
	}
}

func TestParseParams_Values(t *testing.T) {
	p := ParseParams("3", "20", "views", "ASC", "  cats  ")
	if p.Page != 3 || p.Limit != 20 {
		t.Errorf("page/limit = %d/%d, want 3/20", p.Page, p.Limit)
	}
	if p.SortBy != "views" || p.SortType != SortAsc {
		t.Errorf("sort = %s/%s, want views/asc", p.SortBy, p.SortType)
	}
	if p.Query != "cats" {
		t.Errorf("query = %q, want %q", p.Query, "cats")
	}
}
