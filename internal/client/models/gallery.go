package models

import (
	"net/url"
	"strings"

	"github.com/Jtanchezz/GeneralStore/internal/common"
)

// Gallery is the ordered, deduplicated set of image references for one
// listing, plus a memory of references that failed to load. The legacy
// single-image field goes first so it stays the primary image.
type Gallery struct {
	refs   []string
	broken map[string]struct{}
}

// NewGallery merges the legacy primary reference and the gallery list,
// dropping empty strings and duplicates while preserving order.
func NewGallery(primary string, gallery []string) *Gallery {
	seen := make(map[string]struct{}, len(gallery)+1)
	refs := make([]string, 0, len(gallery)+1)

	add := func(ref string) {
		if ref == "" {
			return
		}
		if _, ok := seen[ref]; ok {
			return
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	add(primary)
	for _, ref := range gallery {
		add(ref)
	}

	return &Gallery{refs: refs, broken: make(map[string]struct{})}
}

func (g *Gallery) Len() int { return len(g.refs) }

// At returns the visible reference for a rotation index. The index wraps in
// both directions, so repeated "previous" steps from 0 walk the gallery
// backwards. ok is false for an empty gallery.
func (g *Gallery) At(index int) (string, bool) {
	n := len(g.refs)
	if n == 0 {
		return "", false
	}
	return g.refs[((index%n)+n)%n], true
}

// MarkBroken remembers a reference that failed to load. Broken references
// are never retried; the view shows placeholder content instead.
func (g *Gallery) MarkBroken(ref string) {
	g.broken[ref] = struct{}{}
}

// Broken reports whether the reference previously failed to load.
func (g *Gallery) Broken(ref string) bool {
	_, ok := g.broken[ref]
	return ok
}

// ResolveImageRef turns a stored reference into a displayable address:
// absolute URLs pass through unchanged, media-storage paths are prefixed
// with the API base address, and anything else is treated as a
// root-relative static asset path and percent-encoded.
func ResolveImageRef(baseURL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if strings.HasPrefix(ref, common.UploadsPathPrefix) {
		return strings.TrimSuffix(baseURL, "/") + ref
	}
	u := url.URL{Path: "/" + strings.TrimPrefix(ref, "/")}
	return u.EscapedPath()
}
