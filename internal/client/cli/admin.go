package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Jtanchezz/GeneralStore/internal/client/models"
)

// NewItem walks an admin through creating a listing.
func (a *App) NewItem(ctx context.Context) {
	if !a.isAdmin() {
		fmt.Println("Only admins can manage listings.")
		return
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return
	}
	brand, err := getSimpleText(a.reader, "Brand", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return
	}
	condition, err := getSimpleText(a.reader, "Condition (New, Excellent, Good, Rough)", os.Stdout)
	if err != nil {
		return
	}
	price, err := GetFloat(a.reader,
		fmt.Sprintf("Price in %s", a.session.OperatingCurrency()), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	images, err := getSimpleText(a.reader, "Image references (space-separated, optional)", os.Stdout)
	if err != nil {
		return
	}

	draft := models.CameraDraft{
		Title:        title,
		Brand:        brand,
		Description:  description,
		Condition:    models.Condition(condition),
		Price:        price,
		Currency:     a.session.OperatingCurrency(),
		ImageGallery: strings.Fields(images),
	}
	created, err := a.catalog.CreateListing(ctx, draft)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show(fmt.Sprintf("Listed %s %s.", created.Brand, created.Title))
}

// EditItem updates selected fields of a listing from the last printed
// listing. Empty answers leave a field unchanged.
func (a *App) EditItem(ctx context.Context, args []string) {
	if !a.isAdmin() {
		fmt.Println("Only admins can manage listings.")
		return
	}
	c, ok := a.cameraAt(args)
	if !ok {
		return
	}

	patch := models.CameraPatch{}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", c.Title), os.Stdout)
	if err != nil {
		return
	}
	if title != "" {
		patch.Title = &title
	}

	priceText, err := getSimpleText(a.reader, fmt.Sprintf("Price [%.2f]", c.Price), os.Stdout)
	if err != nil {
		return
	}
	if priceText != "" {
		var price float64
		if _, err := fmt.Sscanf(priceText, "%g", &price); err != nil {
			fmt.Println("Not a number:", priceText)
			return
		}
		patch.Price = &price
	}

	statusText, err := getSimpleText(a.reader,
		fmt.Sprintf("Status [%s] (available, reserved, sold)", c.Status), os.Stdout)
	if err != nil {
		return
	}
	if statusText != "" {
		status := models.CameraStatus(statusText)
		patch.Status = &status
	}

	updated, err := a.catalog.UpdateListing(ctx, c.ID, patch)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show(fmt.Sprintf("Updated %s.", updated.Title))
}

// DeleteItem removes a listing from the last printed listing.
func (a *App) DeleteItem(ctx context.Context, args []string) {
	if !a.isAdmin() {
		fmt.Println("Only admins can manage listings.")
		return
	}
	c, ok := a.cameraAt(args)
	if !ok {
		return
	}

	confirm, err := getSimpleText(a.reader,
		fmt.Sprintf("Delete %s %s? (yes/no)", c.Brand, c.Title), os.Stdout)
	if err != nil {
		return
	}
	if confirm != "yes" {
		fmt.Println("Kept.")
		return
	}

	if err := a.catalog.DeleteListing(ctx, c.ID); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notice.Show(fmt.Sprintf("Deleted %s.", c.Title))
}
