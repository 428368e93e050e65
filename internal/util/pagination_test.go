package util

import "testing"

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   uint
		want       int
	}{
		{"Zero items", 0, 10, 1},
		{"Exact division", 20, 10, 2},
		{"With remainder", 21, 10, 3},
		{"Zero page size falls back to default", 25, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTotalPage(tt.totalItems, tt.pageSize); got != tt.want {
				t.Errorf("CalculateTotalPage(%d, %d) = %d, want %d", tt.totalItems, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestNormalizePagination(t *testing.T) {
	page, pageSize := NormalizePagination(0, 0)
	if page != 1 || pageSize == 0 {
		t.Errorf("NormalizePagination(0, 0) = (%d, %d), want page 1 and non-zero page size", page, pageSize)
	}

	page, pageSize = NormalizePagination(3, 1000)
	if page != 3 || pageSize > 100 {
		t.Errorf("NormalizePagination(3, 1000) = (%d, %d), want page 3 and clamped page size", page, pageSize)
	}
}
