package nav

import (
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/games"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/home", Label: "Home"},
	{Path: "/games", Label: "Games"},
	{Path: "/lists", Label: "My Lists"},
	{Path: "/profile", Label: "Profile"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/games" or "/games/..."
	if currentPath == itemPath {
		return true
	}
	// the detail page hangs off /game/, not /games/
	if itemPath == "/games" && strings.HasPrefix(currentPath, "/game/") {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
