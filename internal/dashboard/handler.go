package dashboard

import (
	"net/http"

	"github.com/bornholm/campus/internal/ui"
)

type Handler struct {
	logoutURL string
	mux       *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(logoutURL string) *Handler {
	handler := &Handler{
		logoutURL: logoutURL,
		mux:       &http.ServeMux{},
	}

	for _, item := range ui.Navigation {
		pattern := "GET " + item.Href

		switch item.Href {
		case "/dashboard":
			handler.mux.HandleFunc(pattern, handler.serveOverview)
		case "/settings":
			handler.mux.HandleFunc(pattern, handler.serveSettings)
		default:
			handler.mux.HandleFunc(pattern, handler.serveSection(item))
		}
	}

	return handler
}

// Patterns returns the routes served by the handler.
func (h *Handler) Patterns() []string {
	patterns := make([]string, 0, len(ui.Navigation))
	for _, item := range ui.Navigation {
		patterns = append(patterns, "GET "+item.Href)
	}

	return patterns
}

var _ http.Handler = &Handler{}
