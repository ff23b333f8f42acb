package setup

import (
	"context"
	"time"

	"github.com/bornholm/campus/internal/authn/form"
	"github.com/bornholm/campus/internal/config"
	"github.com/bornholm/campus/internal/ratelimit"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

var NewFormHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*form.Handler, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := []form.OptionFunc{
		form.WithPrefix("/auth"),
		form.WithPostLoginRedirect(string(conf.Auth.PostLoginRedirect)),
		form.WithRateLimiter(ratelimit.New(
			rate.Limit(conf.HTTP.RateLimit.Rate),
			int(conf.HTTP.RateLimit.Burst),
		)),
	}

	if conf.Auth.LoginDelay != nil {
		opts = append(opts, form.WithLoginDelay(time.Duration(*conf.Auth.LoginDelay)))
	}

	if conf.Auth.RememberFor != nil {
		opts = append(opts, form.WithRememberFor(time.Duration(*conf.Auth.RememberFor)))
	}

	return form.NewHandler(sessionStore, opts...), nil
})
