package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
)

func scored(n int) []ScoredItem {
	out := make([]ScoredItem, n)
	for i := range out {
		out[i] = ScoredItem{Item: knowledge.Item{ID: fmt.Sprintf("%d", i)}}
	}
	return out
}

func ids(p Page) []string {
	out := make([]string, len(p.Items))
	for i, si := range p.Items {
		out[i] = si.Item.ID
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		wantIDs       []string
		wantMore      bool
	}{
		{"middle page", 3, 3, []string{"3", "4", "5"}, true},
		{"last item", 3, 9, []string{"9"}, false},
		{"exact end", 5, 5, []string{"5", "6", "7", "8", "9"}, false},
		{"past end", 3, 20, []string{}, false},
		{"no limit", 0, 4, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(scored(10), tc.limit, tc.offset)
			if p.Total != 10 {
				t.Errorf("Total = %d, want 10", p.Total)
			}
			got := ids(p)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("items = %v, want %v", got, tc.wantIDs)
			}
			for i := range got {
				if got[i] != tc.wantIDs[i] {
					t.Fatalf("items = %v, want %v", got, tc.wantIDs)
				}
			}
			if p.HasMore != tc.wantMore {
				t.Errorf("HasMore = %v, want %v", p.HasMore, tc.wantMore)
			}
		})
	}
}

func TestFailed(t *testing.T) {
	p := Failed(5, 10, errors.New("store down"))
	if p.Total != 0 || p.HasMore || len(p.Items) != 0 {
		t.Errorf("failed page must be empty: %+v", p)
	}
	if p.Items == nil {
		t.Error("failed page should carry an empty, non-nil slice")
	}
	if p.Error != "store down" {
		t.Errorf("Error = %q", p.Error)
	}
}

func TestItemsOnly(t *testing.T) {
	p := Page{Items: []ScoredItem{{Item: knowledge.Item{ID: "a"}, Score: 3}}}
	items := p.ItemsOnly()
	if len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestEmptyFacets(t *testing.T) {
	f := EmptyFacets()
	if f.ITSMTypes == nil || f.Tags == nil || f.Severities == nil || f.Statuses == nil {
		t.Fatal("maps must be initialised")
	}
}
