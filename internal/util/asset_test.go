package util

import "testing"

func TestIsPhotoAsset(t *testing.T) {
	tests := []struct {
		name     string
		fileType string
		want     bool
	}{
		{"jpeg", "image/jpeg", true},
		{"png", "image/png", true},
		{"uppercase mime", "IMAGE/TIFF", true},
		{"pdf", "application/pdf", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPhotoAsset(tt.fileType); got != tt.want {
				t.Errorf("IsPhotoAsset(%q) = %v, want %v", tt.fileType, got, tt.want)
			}
		})
	}
}

func TestIsDesignAsset(t *testing.T) {
	tests := []struct {
		name     string
		fileType string
		fileName string
		want     bool
	}{
		{"mime mentions design", "application/x-design", "anything.bin", true},
		{"photoshop extension", "application/octet-stream", "cover.psd", true},
		{"illustrator extension", "application/postscript", "logo.AI", true},
		{"figma extension", "application/octet-stream", "mock.fig", true},
		{"name hint english", "application/zip", "album-design-v2.zip", true},
		{"name hint russian", "application/zip", "макет_обложки.zip", true},
		{"plain photo", "image/jpeg", "IMG_2041.jpg", false},
		{"plain document", "application/pdf", "contract.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDesignAsset(tt.fileType, tt.fileName); got != tt.want {
				t.Errorf("IsDesignAsset(%q, %q) = %v, want %v", tt.fileType, tt.fileName, got, tt.want)
			}
		})
	}
}
