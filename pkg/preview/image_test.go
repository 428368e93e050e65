package preview

import "testing"

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name                 string
		width, height        uint
		maxWidth, maxHeight  uint
		wantWidth, wantWantH uint
	}{
		{"already fits", 100, 80, 320, 320, 100, 80},
		{"wide image clamps on width", 1600, 800, 320, 320, 320, 160},
		{"tall image clamps on height", 800, 1600, 320, 320, 160, 320},
		{"square", 1000, 1000, 320, 320, 320, 320},
		{"zero dimension left alone", 0, 500, 320, 320, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := fitWithin(tt.width, tt.height, tt.maxWidth, tt.maxHeight)
			if gotW != tt.wantWidth || gotH != tt.wantWantH {
				t.Errorf("fitWithin(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.width, tt.height, tt.maxWidth, tt.maxHeight, gotW, gotH, tt.wantWidth, tt.wantWantH)
			}
		})
	}
}
