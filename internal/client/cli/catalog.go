package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jtanchezz/GeneralStore/internal/client/models"
)

// cameraAt resolves a 1-based index argument into the last printed listing.
func (a *App) cameraAt(args []string) (models.Camera, bool) {
	idx, ok := parseIndex(args, len(a.visibleCameras))
	if !ok {
		return models.Camera{}, false
	}
	return a.visibleCameras[idx], true
}

// List refreshes the catalog and prints the listings matching the current
// filter, with prices in the display currency.
func (a *App) List(ctx context.Context) {
	if err := a.catalog.Refresh(ctx); err != nil {
		a.fail(ctx, err)
		return
	}

	a.visibleCameras = a.catalog.Filter(a.filterCategory, a.filterTerm)
	if len(a.visibleCameras) == 0 {
		fmt.Println("No items match the current filter.")
		return
	}
	for i, c := range a.visibleCameras {
		marker := ""
		if !c.Available() {
			marker = fmt.Sprintf(" [%s]", c.Status)
		}
		fmt.Printf("%2d. %s %s (%s) %s%s\n", i+1, c.Brand, c.Title, c.Condition, a.price(c), marker)
	}
}

// Filter sets the category facet and optional title search term for List.
// "filter all" clears both.
func (a *App) Filter(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: filter <category> [term]")
		fmt.Println("Categories:", strings.Join(a.catalog.Categories(), ", "))
		return
	}
	a.filterCategory = args[0]
	a.filterTerm = strings.Join(args[1:], " ")
	if strings.EqualFold(a.filterCategory, "all") && a.filterTerm == "" {
		fmt.Println("Filter cleared.")
		return
	}
	fmt.Printf("Filtering by %q", a.filterCategory)
	if a.filterTerm != "" {
		fmt.Printf(", title containing %q", a.filterTerm)
	}
	fmt.Println()
}

// ShowItem prints one listing in full, including its resolved gallery.
func (a *App) ShowItem(args []string) {
	c, ok := a.cameraAt(args)
	if !ok {
		return
	}

	fmt.Printf("%s %s\n", c.Brand, c.Title)
	fmt.Printf("  condition: %s\n", c.Condition)
	fmt.Printf("  price:     %s\n", a.price(c))
	fmt.Printf("  status:    %s\n", c.Status)
	if c.Description != "" {
		fmt.Printf("  %s\n", c.Description)
	}

	g := a.galleryFor(c)
	if g.Len() == 0 {
		fmt.Println("  no images")
		return
	}
	idx := a.galleryIdx[c.ID]
	fmt.Printf("  image %d of %d: %s\n", ((idx%g.Len())+g.Len())%g.Len()+1, g.Len(),
		a.resolveImage(g, idx))
}

// galleryFor keeps one gallery per listing so the broken-image memory
// survives across commands.
func (a *App) galleryFor(c models.Camera) *models.Gallery {
	if g, ok := a.galleries[c.ID]; ok {
		return g
	}
	g := c.Gallery()
	a.galleries[c.ID] = g
	return g
}

// RotateGallery moves the visible image of a listing forward or backward,
// wrapping at both ends.
func (a *App) RotateGallery(args []string, delta int) {
	c, ok := a.cameraAt(args)
	if !ok {
		return
	}
	g := a.galleryFor(c)
	if g.Len() == 0 {
		fmt.Println("No images to browse.")
		return
	}
	a.galleryIdx[c.ID] += delta
	idx := a.galleryIdx[c.ID]
	fmt.Printf("image %d of %d: %s\n", ((idx%g.Len())+g.Len())%g.Len()+1, g.Len(),
		a.resolveImage(g, idx))
}

// MarkBroken remembers that the currently visible image of a listing failed
// to load; it renders as a placeholder from then on.
func (a *App) MarkBroken(args []string) {
	c, ok := a.cameraAt(args)
	if !ok {
		return
	}
	g := a.galleryFor(c)
	ref, ok := g.At(a.galleryIdx[c.ID])
	if !ok {
		fmt.Println("No images to mark.")
		return
	}
	g.MarkBroken(ref)
	fmt.Println("Marked as unavailable:", ref)
}

// resolveImage returns the displayable URL for the gallery image at the
// rotation index, skipping references already known to be broken.
func (a *App) resolveImage(g *models.Gallery, idx int) string {
	ref, ok := g.At(idx)
	if !ok {
		return "(no image)"
	}
	if g.Broken(ref) {
		return "(image unavailable)"
	}
	return models.ResolveImageRef(a.client.BaseURL(), ref)
}

// SetCurrency switches the display currency for this session.
func (a *App) SetCurrency(args []string) {
	if len(args) == 0 {
		fmt.Println("Display currency is", a.session.DisplayCurrency())
		return
	}
	a.session.SetDisplayCurrency(args[0])
	fmt.Println("Prices now shown in", a.session.DisplayCurrency())
}
