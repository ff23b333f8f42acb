package theme

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

type Handler struct {
	defaultTheme Theme
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	current := fromRequest(r, h.defaultTheme)
	next := current.Toggle()

	setCookie(w, next)

	slog.DebugContext(r.Context(), "theme toggled", slog.String("theme", string(next)))

	http.Redirect(w, r, localRedirect(r.FormValue("next")), http.StatusSeeOther)
}

func NewHandler(defaultTheme Theme) *Handler {
	return &Handler{
		defaultTheme: defaultTheme,
	}
}

var _ http.Handler = &Handler{}

// localRedirect only accepts absolute paths on the current host.
func localRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}

	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}

	return u.String()
}
