// Package filex contains small file helpers shared by the upload workflow.
package filex

import (
	"path/filepath"
	"strings"
)

// imageExtensions mirrors the formats the media endpoint accepts; anything
// else is silently skipped by the server, so we filter before uploading.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// IsImagePath reports whether the file path has a supported image extension.
// The check is case-insensitive.
func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := imageExtensions[ext]
	return ok
}
