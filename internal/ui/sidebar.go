package ui

import (
	"net/http"
	"time"
)

type SidebarTemplateData struct {
	SidebarOpen     bool
	OpenSidebarURL  string
	CloseSidebarURL string
	NavLinks        []NavLink
}

const sidebarQueryParam = "sidebar"

func NewSidebarTemplateData(r *http.Request) SidebarTemplateData {
	return SidebarTemplateData{
		SidebarOpen:     r.URL.Query().Get(sidebarQueryParam) == flagOpen,
		OpenSidebarURL:  withQueryFlag(r.URL, sidebarQueryParam, true),
		CloseSidebarURL: withQueryFlag(r.URL, sidebarQueryParam, false),
		NavLinks:        NavLinks(r.URL.Path),
	}
}

// SessionTemplateData describes the signed in visitor, if any.
type SessionTemplateData struct {
	UserEmail  string
	SignedInAt time.Time
	LogoutURL  string
}
