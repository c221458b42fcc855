package filex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImagePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"dir/photo.jpeg", true},
		{"photo.png", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"doc.pdf", false},
		{"archive.tar.gz", false},
		{"noext", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImagePath(tt.path))
		})
	}
}
