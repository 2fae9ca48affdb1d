package nav

import (
	"fmt"
	"strings"
)

// Item represents a header navigation item.
type Item struct {
	Path  string // e.g. "/basket"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Main is the signed-in account navigation shown in the service header.
var Main = []Item{
	{Path: "/basket", Label: "Basket"},
	{Path: "/orders", Label: "Your orders"},
}

// Build renders navigation items with active state given the current path.
// The basket label carries the item count when it is non-zero.
func Build(currentPath string, basketCount int) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		label := it.Label
		if it.Path == "/basket" && basketCount > 0 {
			label = fmt.Sprintf("Basket (%d)", basketCount)
		}
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/basket" or "/basket/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
