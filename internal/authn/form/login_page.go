package form

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/bornholm/campus/internal/ratelimit"
	"github.com/bornholm/campus/internal/ui"
	"github.com/bornholm/campus/pkg/log"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const (
	actionSignIn         = "sign-in"
	actionTogglePassword = "toggle-password"
)

// errorKeyForm holds errors that are not tied to a single field.
const errorKeyForm = "form"

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	sess, err := h.getSession(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not retrieve session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if pending, exists := retrievePendingSignIn(sess); exists {
		h.renderLoading(w, r, pending)
		return
	}

	h.renderLoginPage(w, r, http.StatusOK, h.newLoginFormData())
}

func (h *Handler) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := LoginForm{
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   r.PostFormValue("password"),
		RememberMe: r.PostFormValue("remember-me") != "",
	}

	data := h.newLoginFormData()
	data.Email = form.Email
	data.Password = form.Password
	data.RememberMe = form.RememberMe
	data.ShowPassword = r.PostFormValue("show-password") == "true"

	if r.PostFormValue("action") == actionTogglePassword {
		data.ShowPassword = !data.ShowPassword
		h.renderLoginPage(w, r, http.StatusOK, data)
		return
	}

	if h.rateLimiter != nil {
		clientKey, err := ratelimit.RemoteAddr(r)
		if err != nil {
			slog.ErrorContext(ctx, "could not retrieve client key", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !h.rateLimiter.Allow(clientKey) {
			slog.WarnContext(ctx, "sign-in rate limit exceeded", slog.String("client", clientKey))
			data.Errors = map[string]string{
				errorKeyForm: "Too many sign-in attempts. Please wait a moment and try again.",
			}
			h.renderLoginPage(w, r, http.StatusTooManyRequests, data)
			return
		}
	}

	fieldErrors, err := form.Validate()
	if err != nil {
		slog.ErrorContext(ctx, "could not validate login form", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(fieldErrors) > 0 {
		data.Errors = fieldErrors
		h.renderLoginPage(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	sess, err := h.getSession(r)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	pending := &pendingSignIn{
		ID:       xid.New().String(),
		Email:    form.Email,
		Remember: form.RememberMe,
		ReadyAt:  h.now().Add(h.loginDelay),
	}

	if err := h.storePendingSignIn(w, r, sess, pending); err != nil {
		slog.ErrorContext(ctx, "could not store pending sign-in", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "sign-in pending", slog.String("signInID", pending.ID), slog.Duration("delay", h.loginDelay))

	h.renderLoading(w, r, pending)
}

func (h *Handler) handleLoginContinue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.getSession(r)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	pending, exists := retrievePendingSignIn(sess)
	if !exists {
		http.Redirect(w, r, h.loginURL(), http.StatusSeeOther)
		return
	}

	if h.now().Before(pending.ReadyAt) {
		h.renderLoading(w, r, pending)
		return
	}

	user, err := h.completeSignIn(w, r, sess, pending)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete sign-in", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "signed in", slog.String("signInID", pending.ID), slog.String("user", user.Email), slog.Bool("remember", pending.Remember))

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(r.Context(), "could not clear session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.postLogoutRedirect, http.StatusSeeOther)
}

// renderLoading renders the disabled form and asks the browser to
// come back once the remaining login delay has elapsed.
func (h *Handler) renderLoading(w http.ResponseWriter, r *http.Request, pending *pendingSignIn) {
	remaining := pending.ReadyAt.Sub(h.now())
	if remaining < 0 {
		remaining = 0
	}

	data := h.newLoginFormData()
	data.Email = pending.Email
	data.RememberMe = pending.Remember
	data.IsLoading = true

	page := h.newLoginPageData(r, data)
	page.RefreshURL = h.continueURL()
	page.RefreshAfter = int(math.Ceil(remaining.Seconds()))

	h.render(w, r, http.StatusOK, "login", page)
}

func (h *Handler) renderLoginPage(w http.ResponseWriter, r *http.Request, status int, data LoginFormTemplateData) {
	h.render(w, r, status, "login", h.newLoginPageData(r, data))
}

func (h *Handler) newLoginFormData() LoginFormTemplateData {
	return LoginFormTemplateData{
		Action:            h.loginURL(),
		ForgotPasswordURL: fmt.Sprintf("%s/forgot-password", h.prefix),
		RegisterURL:       fmt.Sprintf("%s/register", h.prefix),
	}
}

func (h *Handler) newLoginPageData(r *http.Request, data LoginFormTemplateData) LoginPageTemplateData {
	return LoginPageTemplateData{
		HeadTemplateData: ui.NewHeadTemplateData(r, "Sign in"),
		Form:             data,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buff bytes.Buffer

	if err := templates.ExecuteTemplate(&buff, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)), slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", log.Error(errors.WithStack(err)))
	}
}
