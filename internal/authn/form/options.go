package form

import (
	"time"

	"github.com/bornholm/campus/internal/ratelimit"
)

type Options struct {
	SessionName        string
	Prefix             string
	LoginDelay         time.Duration
	PostLoginRedirect  string
	PostLogoutRedirect string
	RememberFor        time.Duration
	RateLimiter        *ratelimit.RateLimiter
	Now                func() time.Time
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName:        "campus_auth",
		Prefix:             "/auth",
		LoginDelay:         1500 * time.Millisecond,
		PostLoginRedirect:  "/dashboard",
		PostLogoutRedirect: "/",
		RememberFor:        30 * 24 * time.Hour,
		Now:                time.Now,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

// WithLoginDelay sets the fixed delay between a valid submission
// and the redirection to the post-login route.
func WithLoginDelay(delay time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.LoginDelay = delay
	}
}

func WithPostLoginRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLoginRedirect = path
	}
}

func WithPostLogoutRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLogoutRedirect = path
	}
}

func WithRememberFor(d time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.RememberFor = d
	}
}

func WithRateLimiter(limiter *ratelimit.RateLimiter) OptionFunc {
	return func(opts *Options) {
		opts.RateLimiter = limiter
	}
}

func WithNow(now func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Now = now
	}
}
