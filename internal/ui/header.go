package ui

import "net/http"

type HeaderLink struct {
	Label string
	Href  string
}

var HeaderLinks = []HeaderLink{
	{Label: "Features", Href: "#features"},
	{Label: "Pricing", Href: "#pricing"},
	{Label: "About", Href: "#about"},
	{Label: "Contact", Href: "#contact"},
}

type HeaderTemplateData struct {
	MenuOpen      bool
	ToggleMenuURL string
	HeaderLinks   []HeaderLink
	LoginURL      string
	RegisterURL   string
}

const menuQueryParam = "menu"

func NewHeaderTemplateData(r *http.Request) HeaderTemplateData {
	open := r.URL.Query().Get(menuQueryParam) == flagOpen

	return HeaderTemplateData{
		MenuOpen:      open,
		ToggleMenuURL: withQueryFlag(r.URL, menuQueryParam, !open),
		HeaderLinks:   HeaderLinks,
		LoginURL:      "/auth/login",
		RegisterURL:   "/auth/register",
	}
}
