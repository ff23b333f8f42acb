// Package theme resolves and toggles the light/dark color scheme
// picked by the visitor.
package theme

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const CookieName = "campus_theme"

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}

	return Dark
}

// Parse returns the theme matching the given value, or false
// when the value is not a known theme.
func Parse(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

type contextKey string

const contextKeyTheme contextKey = "theme"

func FromContext(ctx context.Context) Theme {
	theme, ok := ctx.Value(contextKeyTheme).(Theme)
	if !ok {
		return Light
	}

	return theme
}

func WithContext(ctx context.Context, theme Theme) context.Context {
	return context.WithValue(ctx, contextKeyTheme, theme)
}

// Middleware stores the theme selected by the visitor cookie,
// or the given default, in the request context.
func Middleware(defaultTheme Theme) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), fromRequest(r, defaultTheme))))
		})
	}
}

func fromRequest(r *http.Request, defaultTheme Theme) Theme {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return defaultTheme
	}

	theme, ok := Parse(cookie.Value)
	if !ok {
		return defaultTheme
	}

	return theme
}

func setCookie(w http.ResponseWriter, theme Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(theme),
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
