package helpers

import "testing"

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
	}
	for _, tt := range tests {
		if got := ParsePage(tt.raw); got != tt.want {
			t.Errorf("ParsePage(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(1); got != 0 {
		t.Errorf("Offset(1) = %d, want 0", got)
	}
	if got := Offset(3); got != 2*PageSize {
		t.Errorf("Offset(3) = %d, want %d", got, 2*PageSize)
	}
}

func TestListPage(t *testing.T) {
	data := make([]int, PageSize+2) // two pages
	fetch := func(limit, offset int) ([]int, int, error) {
		if offset >= len(data) {
			return []int{}, len(data), nil
		}
		end := offset + limit
		if end > len(data) {
			end = len(data)
		}
		return data[offset:end], len(data), nil
	}

	items, total, page, err := ListPage(2, fetch)
	if err != nil {
		t.Fatalf("ListPage(2): %v", err)
	}
	if page != 2 || len(items) != 2 || total != len(data) {
		t.Errorf("ListPage(2) = page %d, %d items, total %d", page, len(items), total)
	}

	// a page past the end serves page 1 instead of an empty page
	items, total, page, err = ListPage(999, fetch)
	if err != nil {
		t.Fatalf("ListPage(999): %v", err)
	}
	if page != 1 {
		t.Errorf("out-of-range page served page %d, want 1", page)
	}
	if len(items) != PageSize || total != len(data) {
		t.Errorf("out-of-range page got %d items, total %d", len(items), total)
	}
}

func TestListPageEmptyListing(t *testing.T) {
	fetch := func(limit, offset int) ([]int, int, error) {
		return []int{}, 0, nil
	}
	items, total, page, err := ListPage(5, fetch)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if page != 1 || len(items) != 0 || total != 0 {
		t.Errorf("empty listing = page %d, %d items, total %d, want page 1 empty", page, len(items), total)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 1},
		{1, 1},
		{PageSize, 1},
		{PageSize + 1, 2},
		{3*PageSize - 1, 3},
		{3 * PageSize, 3},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}
