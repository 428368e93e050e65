package util

import (
	"path/filepath"
	"strings"
)

// Asset classification for the project dashboard counters.
//
// IsDesignAsset is a heuristic, not authoritative business logic: the studio
// counts a file as a design deliverable when its MIME type mentions "design",
// the extension belongs to a known design tool, or the file name itself says
// so (including the Russian words the designers actually use).

var designExtensions = map[string]bool{
	".psd":    true,
	".ai":     true,
	".indd":   true,
	".sketch": true,
	".fig":    true,
	".xd":     true,
	".eps":    true,
	".svg":    true,
}

var designNameHints = []string{"design", "дизайн", "макет"}

func IsPhotoAsset(fileType string) bool {
	return strings.HasPrefix(strings.ToLower(fileType), "image/")
}

func IsDesignAsset(fileType, fileName string) bool {
	loweredType := strings.ToLower(fileType)
	if strings.Contains(loweredType, "design") {
		return true
	}

	loweredName := strings.ToLower(fileName)
	if designExtensions[filepath.Ext(loweredName)] {
		return true
	}

	for _, hint := range designNameHints {
		if strings.Contains(loweredName, hint) {
			return true
		}
	}

	return false
}
