package models

import "testing"

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		total     int64
		skip      int
		limit     int
		wantPage  int
		wantPages int
	}{
		{"first page", 10, 25, 0, 10, 1, 3},
		{"second page", 10, 25, 10, 10, 2, 3},
		{"last partial page", 5, 25, 20, 10, 3, 3},
		{"exact multiple", 10, 20, 10, 10, 2, 2},
		{"empty result", 0, 0, 0, 10, 1, 0},
		{"single item", 1, 1, 0, 100, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.items)
			page := NewPage(items, tt.total, tt.skip, tt.limit)
			if page.Page != tt.wantPage {
				t.Fatalf("page = %d, want %d", page.Page, tt.wantPage)
			}
			if page.Pages != tt.wantPages {
				t.Fatalf("pages = %d, want %d", page.Pages, tt.wantPages)
			}
			if page.Total != tt.total {
				t.Fatalf("total = %d, want %d", page.Total, tt.total)
			}
			if page.Limit != tt.limit {
				t.Fatalf("limit = %d, want %d", page.Limit, tt.limit)
			}
			if len(page.Data) != tt.items {
				t.Fatalf("len(data) = %d, want %d", len(page.Data), tt.items)
			}
		})
	}
}

func TestNewPageNilItems(t *testing.T) {
	page := NewPage[User](nil, 0, 0, 10)
	if page.Data == nil {
		t.Fatal("expected empty slice, not nil, so JSON renders [] instead of null")
	}
}
