package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/campus/internal/assets"
	"github.com/bornholm/campus/internal/authn"
	"github.com/bornholm/campus/internal/config"
	"github.com/bornholm/campus/internal/dashboard"
	"github.com/bornholm/campus/internal/landing"
	"github.com/bornholm/campus/internal/pprof"
	"github.com/bornholm/campus/internal/theme"
	"github.com/pkg/errors"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	defaultTheme, ok := theme.Parse(string(conf.UI.Theme))
	if !ok {
		return nil, errors.Errorf("unknown theme '%s'", conf.UI.Theme)
	}

	mux.Handle("/assets/", assets.NewHandler("/assets"))
	mux.Handle("POST /theme", theme.NewHandler(defaultTheme))

	formHandler, err := NewFormHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("/auth/", formHandler)

	requireLogin := bool(conf.Auth.RequireLogin)

	dashboardAuth := authn.Chain(
		authn.WithAuthenticators(
			formHandler.Authenticator(requireLogin),
		),
		authn.WithOptional(!requireLogin),
	)

	dashboardHandler := dashboard.NewHandler(formHandler.LogoutURL())
	for _, pattern := range dashboardHandler.Patterns() {
		mux.Handle(pattern, dashboardAuth(dashboardHandler))
	}

	mux.Handle("GET /{$}", landing.NewHandler())

	if conf.HTTP.Debug {
		slog.WarnContext(ctx, "debug endpoints enabled", slog.String("prefix", "/debug/pprof"))
		mux.Handle("/debug/pprof/", pprof.NewHandler("/debug/pprof"))
	}

	return slogMiddleware(theme.Middleware(defaultTheme)(mux)), nil
}
