package handler

import "strings"

// PluginInfo describes the viewer the way the host lists installed plugins
type PluginInfo struct {
	Name        string `json:"name"`
	VerboseName string `json:"verbose_name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	BaseURL     string `json:"base_url"`
}

// Plugin is the viewer's registration metadata
var Plugin = PluginInfo{
	Name:        "inventory_viewer",
	VerboseName: "Inventory Viewer",
	Description: "Shows inventory modules grouped by module type in tables.",
	Version:     "1.0",
	BaseURL:     "inventory-viewer",
}

// Route names
const (
	RouteInventory = "moduly_list"
	RouteExport    = "moduly_export"
)

// MenuItem is a navigation entry pointing at a named route
type MenuItem struct {
	Link string
	Text string
}

// MenuItems are the entries the plugin adds to the navigation menu
var MenuItems = []MenuItem{
	{Link: RouteInventory, Text: "Inventory View"},
}

// Router resolves route names to paths under the plugin base URL
type Router struct {
	base string
}

// NewRouter creates a router for base, which must already be normalized
// (leading slash, no trailing slash, "" for the root mount)
func NewRouter(base string) *Router {
	return &Router{base: base}
}

// Base returns the mount point
func (r *Router) Base() string {
	return r.base
}

// Reverse returns the path of a named route. Unknown names resolve to "".
func (r *Router) Reverse(name string, args ...string) string {
	switch name {
	case RouteInventory:
		return r.base + "/"
	case RouteExport:
		if len(args) == 0 {
			return ""
		}
		return r.base + "/export/" + args[0]
	}
	return ""
}

// menuLink is a MenuItem resolved for rendering
type menuLink struct {
	Text   string
	URL    string
	Active bool
}

func (r *Router) menu(items []MenuItem, current string) []menuLink {
	links := make([]menuLink, 0, len(items))
	for _, item := range items {
		url := r.Reverse(item.Link)
		if url == "" {
			continue
		}
		links = append(links, menuLink{
			Text:   item.Text,
			URL:    url,
			Active: strings.TrimSuffix(url, "/") == strings.TrimSuffix(current, "/"),
		})
	}
	return links
}
