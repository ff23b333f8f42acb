package ui

import (
	"net/http"

	"github.com/bornholm/campus/internal/theme"
)

type HeadTemplateData struct {
	PageTitle  string
	Theme      theme.Theme
	CurrentURL string

	// RefreshURL, when set, is loaded by the browser after RefreshAfter seconds.
	RefreshURL   string
	RefreshAfter int
}

func NewHeadTemplateData(r *http.Request, pageTitle string) HeadTemplateData {
	return HeadTemplateData{
		PageTitle:  pageTitle,
		Theme:      theme.FromContext(r.Context()),
		CurrentURL: r.URL.RequestURI(),
	}
}
