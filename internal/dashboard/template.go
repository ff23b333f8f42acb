package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bornholm/campus/internal/authn"
	"github.com/bornholm/campus/internal/ui"
	"github.com/bornholm/campus/pkg/log"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// LayoutTemplateData is shared by every page rendered inside the dashboard layout.
type LayoutTemplateData struct {
	ui.HeadTemplateData
	ui.SidebarTemplateData
	ui.SessionTemplateData
}

type OverviewTemplateData struct {
	LayoutTemplateData
	Sections []ui.NavItem
}

type SettingsPanel struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

type SettingsTemplateData struct {
	LayoutTemplateData
	Panels []SettingsPanel
}

type SectionTemplateData struct {
	LayoutTemplateData
	Section ui.NavItem
}

func (h *Handler) newLayoutData(r *http.Request, pageTitle string) LayoutTemplateData {
	data := LayoutTemplateData{
		HeadTemplateData:    ui.NewHeadTemplateData(r, pageTitle),
		SidebarTemplateData: ui.NewSidebarTemplateData(r),
	}

	user, err := authn.ContextUser(r.Context())
	if err == nil {
		data.SessionTemplateData = ui.SessionTemplateData{
			UserEmail:  user.UserEmail(),
			SignedInAt: user.UserSignedInAt(),
			LogoutURL:  h.logoutURL,
		}
	}

	return data
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buff bytes.Buffer

	if err := templates.ExecuteTemplate(&buff, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)), slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", log.Error(errors.WithStack(err)))
	}
}
