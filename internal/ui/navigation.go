package ui

import (
	"net/url"
)

// NavItem is an entry of the dashboard sidebar.
type NavItem struct {
	Name string
	Href string
	Icon string
}

var Navigation = []NavItem{
	{Name: "Dashboard", Href: "/dashboard", Icon: "layout-dashboard"},
	{Name: "Students", Href: "/students", Icon: "users"},
	{Name: "Teachers", Href: "/teachers", Icon: "graduation-cap"},
	{Name: "Classes", Href: "/classes", Icon: "book-open"},
	{Name: "Subjects", Href: "/subjects", Icon: "book-open"},
	{Name: "Attendance", Href: "/attendance", Icon: "clipboard-check"},
	{Name: "Results", Href: "/results", Icon: "file-text"},
	{Name: "Fees", Href: "/fees", Icon: "credit-card"},
	{Name: "Timetable", Href: "/timetable", Icon: "calendar"},
	{Name: "Noticeboard", Href: "/noticeboard", Icon: "message-square"},
	{Name: "Profile", Href: "/profile", Icon: "user"},
	{Name: "Settings", Href: "/settings", Icon: "settings"},
}

type NavLink struct {
	NavItem
	Active bool
}

// NavLinks marks the item whose href is exactly the current path as active.
func NavLinks(currentPath string) []NavLink {
	links := make([]NavLink, 0, len(Navigation))
	for _, item := range Navigation {
		links = append(links, NavLink{
			NavItem: item,
			Active:  item.Href == currentPath,
		})
	}

	return links
}

func FindNavItem(href string) (NavItem, bool) {
	for _, item := range Navigation {
		if item.Href == href {
			return item, true
		}
	}

	return NavItem{}, false
}

const flagOpen = "open"

// withQueryFlag returns the request URI of u with the given
// query flag set to "open", or removed.
func withQueryFlag(u *url.URL, key string, open bool) string {
	clone := *u
	query := clone.Query()

	if open {
		query.Set(key, flagOpen)
	} else {
		query.Del(key)
	}

	clone.RawQuery = query.Encode()

	return clone.RequestURI()
}
