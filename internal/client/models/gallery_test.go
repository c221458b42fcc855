package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGallery_DeduplicatesAndKeepsPrimaryFirst(t *testing.T) {
	g := NewGallery("/uploads/cameras/a.jpg", []string{
		"/uploads/cameras/b.jpg",
		"/uploads/cameras/a.jpg", // duplicate of the primary
		"",
		"/uploads/cameras/c.jpg",
		"/uploads/cameras/b.jpg",
	})

	require.Equal(t, 3, g.Len())
	first, ok := g.At(0)
	require.True(t, ok)
	assert.Equal(t, "/uploads/cameras/a.jpg", first)
}

func TestGallery_At_WrapsForward(t *testing.T) {
	g := NewGallery("", []string{"a", "b", "c"})

	var got []string
	for i := 0; i < 6; i++ {
		ref, ok := g.At(i)
		require.True(t, ok)
		got = append(got, ref)
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, got)
}

func TestGallery_At_WrapsBackward(t *testing.T) {
	g := NewGallery("", []string{"a", "b", "c"})

	// repeated "previous" from index 0 must visit 0,2,1,0,2,1
	var got []string
	for i := 0; i > -6; i-- {
		ref, ok := g.At(i)
		require.True(t, ok)
		got = append(got, ref)
	}
	assert.Equal(t, []string{"a", "c", "b", "a", "c", "b"}, got)
}

func TestGallery_At_Empty(t *testing.T) {
	g := NewGallery("", nil)
	_, ok := g.At(0)
	assert.False(t, ok)
	assert.Zero(t, g.Len())
}

func TestGallery_BrokenIsRemembered(t *testing.T) {
	g := NewGallery("", []string{"a", "b"})

	assert.False(t, g.Broken("a"))
	g.MarkBroken("a")
	assert.True(t, g.Broken("a"))
	assert.False(t, g.Broken("b"))
}

func TestResolveImageRef(t *testing.T) {
	const base = "http://localhost:8000"

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"absolute http", "http://cdn.example.com/x.jpg", "http://cdn.example.com/x.jpg"},
		{"absolute https", "https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
		{"uploads path", "/uploads/cameras/abc.jpg", "http://localhost:8000/uploads/cameras/abc.jpg"},
		{"static asset", "img/placeholder camera.png", "/img/placeholder%20camera.png"},
		{"rooted static asset", "/img/logo.png", "/img/logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImageRef(base, tt.ref))
		})
	}
}

func TestResolveImageRef_BaseWithTrailingSlash(t *testing.T) {
	got := ResolveImageRef("http://localhost:8000/", "/uploads/a.jpg")
	assert.Equal(t, "http://localhost:8000/uploads/a.jpg", got)
}
