package landing

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

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

type Feature struct {
	Title       string
	Description string
	Icon        string
}

var Features = []Feature{
	{
		Title:       "Secure & Reliable",
		Description: "Enterprise-grade security with role-based access control and data protection.",
		Icon:        "shield",
	},
	{
		Title:       "Multi-Role Access",
		Description: "Dedicated portals for administrators, teachers, students and parents.",
		Icon:        "users",
	},
	{
		Title:       "Real-time Analytics",
		Description: "Track attendance, performance and school operations as they happen.",
		Icon:        "bar-chart",
	},
}

type HomeTemplateData struct {
	ui.HeadTemplateData
	ui.HeaderTemplateData
	Features []Feature
}

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	handler := &Handler{
		mux: &http.ServeMux{},
	}

	handler.mux.HandleFunc("GET /{$}", handler.getHomePage)

	return handler
}

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	data := HomeTemplateData{
		HeadTemplateData:   ui.NewHeadTemplateData(r, "Home"),
		HeaderTemplateData: ui.NewHeaderTemplateData(r),
		Features:           Features,
	}

	render(w, r, "home", data)
}

func render(w http.ResponseWriter, r *http.Request, name string, data any) {
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

var _ http.Handler = &Handler{}
