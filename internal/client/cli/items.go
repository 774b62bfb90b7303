package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

func itemLine(item *domain.Item) string {
	status := "found"
	if item.IsLost {
		status = "lost"
	}
	line := fmt.Sprintf("#%d  %s  [%s]  at %s", item.ID, item.Title, status, item.Location)
	if item.Claimed {
		line += "  (claimed)"
	}
	return line
}

// Items lists items, optionally filtered to "lost" or "found".
func (a *App) Items(ctx context.Context, status string) error {
	items, err := a.items.List(ctx, status)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No items to show.")
		return nil
	}
	for i := range items {
		printlnFn(itemLine(&items[i]))
	}
	return nil
}

// Show prints one item in full. When the viewer reported the item, the
// claims filed against it are listed too, so a pending claim can be
// forwarded from here.
func (a *App) Show(ctx context.Context, id string) error {
	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Item id must be a number.")
		return err
	}

	item, err := a.items.Get(ctx, itemID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(itemLine(item))
	if item.Description != "" {
		printlnFn("Description: " + item.Description)
	}
	printlnFn("Category: " + item.Category)
	if item.User != nil {
		printlnFn("Reported by: " + item.User.Username)
	}
	if item.ImageURL != "" {
		printlnFn("Image: " + item.ImageURL)
	}
	if item.Claimed && item.ClaimedByUser != nil {
		printlnFn("Claimed by: " + item.ClaimedByUser.Username)
	}

	user := a.store.User()
	if user == nil || !item.ReportedBy(user.ID) {
		return nil
	}

	claims, err := a.claims.ForItem(ctx, itemID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(claims) == 0 {
		printlnFn("No claims on this item yet.")
		return nil
	}
	printlnFn("Claims on this item:")
	for i := range claims {
		printlnFn("  " + claimLine(&claims[i]))
	}
	return nil
}

// Report walks through the item submission form and files the item.
func (a *App) Report(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Item title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Describe the item:", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (e.g. Keys, Electronics, Documents)", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Where was it lost or found?", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Did you lose it or find it? (lost/found)", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Path to a photo (leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.items.Report(ctx, domain.NewItem{
		Title:       title,
		Description: description,
		Category:    category,
		Location:    location,
		IsLost:      strings.EqualFold(strings.TrimSpace(kind), "lost"),
	}, imagePath)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)
	return nil
}
