package form

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/campus/internal/authn"
	"github.com/bornholm/campus/internal/ratelimit"
	"github.com/bornholm/campus/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

type Handler struct {
	mux                *http.ServeMux
	sessionStore       sessions.Store
	sessionName        string
	prefix             string
	loginDelay         time.Duration
	postLoginRedirect  string
	postLogoutRedirect string
	rememberFor        time.Duration
	rateLimiter        *ratelimit.RateLimiter
	now                func() time.Time
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:                http.NewServeMux(),
		sessionStore:       sessionStore,
		sessionName:        opts.SessionName,
		prefix:             opts.Prefix,
		loginDelay:         opts.LoginDelay,
		postLoginRedirect:  opts.PostLoginRedirect,
		postLogoutRedirect: opts.PostLogoutRedirect,
		rememberFor:        opts.RememberFor,
		rateLimiter:        opts.RateLimiter,
		now:                opts.Now,
	}

	h.mux.HandleFunc(fmt.Sprintf("GET %s/login", h.prefix), h.getLoginPage)
	h.mux.HandleFunc(fmt.Sprintf("POST %s/login", h.prefix), h.handleLoginForm)
	h.mux.HandleFunc(fmt.Sprintf("GET %s/login/continue", h.prefix), h.handleLoginContinue)
	h.mux.HandleFunc(fmt.Sprintf("GET %s/logout", h.prefix), h.handleLogout)
	h.mux.HandleFunc(fmt.Sprintf("GET %s/register", h.prefix), h.getRegisterPage)
	h.mux.HandleFunc(fmt.Sprintf("GET %s/forgot-password", h.prefix), h.getForgotPasswordPage)

	return h
}

// Authenticator identifies the visitor from its session. When authoritative,
// anonymous visitors are redirected to the login page.
func (h *Handler) Authenticator(authoritative bool) authn.Authenticator {
	return authn.AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (authn.User, error) {
		user, err := h.retrieveSessionUser(r)
		if err != nil {
			if !errors.Is(err, errSessionNotFound) {
				slog.ErrorContext(r.Context(), "could not retrieve user from session", log.Error(errors.WithStack(err)))
			}

			if authoritative {
				http.Redirect(w, r, h.loginURL(), http.StatusSeeOther)
				return nil, errors.WithStack(authn.ErrCancel)
			}

			return nil, nil
		}

		return user, nil
	})
}

func (h *Handler) LogoutURL() string {
	return fmt.Sprintf("%s/logout", h.prefix)
}

func (h *Handler) loginURL() string {
	return fmt.Sprintf("%s/login", h.prefix)
}

func (h *Handler) continueURL() string {
	return fmt.Sprintf("%s/login/continue", h.prefix)
}

var _ http.Handler = &Handler{}
