package ratelimit

import (
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bornholm/campus/internal/syncx"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

type RateLimiter struct {
	rate      rate.Limit
	burst     int
	idle      time.Duration
	now       func() time.Time
	lastSweep atomic.Int64
	clients   syncx.Map[string, *client]
}

// Allow reports whether the client identified by key may proceed.
// Clients idle for longer than the configured timeout are forgotten.
func (l *RateLimiter) Allow(key string) bool {
	now := l.now()

	c, _ := l.clients.LoadOrStore(key, &client{limiter: rate.NewLimiter(l.rate, l.burst)})
	c.lastSeen.Store(now.UnixNano())

	l.sweep(now)

	return c.limiter.AllowN(now, 1)
}

func (l *RateLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idle) {
		return
	}

	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	l.clients.Range(func(key string, c *client) bool {
		if now.UnixNano()-c.lastSeen.Load() > int64(l.idle) {
			l.clients.Delete(key)
		}
		return true
	})
}

// RemoteAddr keys clients by the host part of the request remote address.
func RemoteAddr(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse remote address '%s'", r.RemoteAddr)
	}

	return host, nil
}

type Options struct {
	IdleTimeout time.Duration
	Now         func() time.Time
}

type OptionFunc func(opts *Options)

func WithIdleTimeout(d time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.IdleTimeout = d
	}
}

func WithNow(now func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Now = now
	}
}

func New(rate rate.Limit, burst int, funcs ...OptionFunc) *RateLimiter {
	opts := &Options{
		IdleTimeout: 10 * time.Minute,
		Now:         time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}

	return &RateLimiter{
		rate:  rate,
		burst: burst,
		idle:  opts.IdleTimeout,
		now:   opts.Now,
	}
}
