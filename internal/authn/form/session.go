package form

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/campus/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var errSessionNotFound = errors.New("session not found")

const (
	sessionKeyEmail           = "email"
	sessionKeySignedInAt      = "signedInAt"
	sessionKeyPendingID       = "pendingId"
	sessionKeyPendingEmail    = "pendingEmail"
	sessionKeyPendingRemember = "pendingRemember"
	sessionKeyPendingReadyAt  = "pendingReadyAt"
)

// pendingSignIn is a submitted login waiting for the login delay to elapse.
type pendingSignIn struct {
	ID       string
	Email    string
	Remember bool
	ReadyAt  time.Time
}

func (h *Handler) getSession(r *http.Request) (*sessions.Session, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		if sess == nil {
			return nil, errors.WithStack(err)
		}

		// Unreadable cookies (ie. rotated signing keys) are replaced by a fresh session
		slog.WarnContext(r.Context(), "could not decode session, starting a new one", log.Error(errors.WithStack(err)))
	}

	return sess, nil
}

func (h *Handler) retrieveSessionUser(r *http.Request) (*User, error) {
	sess, err := h.getSession(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	email, ok := sess.Values[sessionKeyEmail].(string)
	if !ok || email == "" {
		return nil, errors.WithStack(errSessionNotFound)
	}

	user := &User{
		Email: email,
	}

	if signedInAt, ok := sess.Values[sessionKeySignedInAt].(int64); ok {
		user.SignedInAt = time.Unix(signedInAt, 0)
	}

	return user, nil
}

func retrievePendingSignIn(sess *sessions.Session) (*pendingSignIn, bool) {
	id, ok := sess.Values[sessionKeyPendingID].(string)
	if !ok || id == "" {
		return nil, false
	}

	pending := &pendingSignIn{ID: id}
	pending.Email, _ = sess.Values[sessionKeyPendingEmail].(string)
	pending.Remember, _ = sess.Values[sessionKeyPendingRemember].(bool)

	if readyAt, ok := sess.Values[sessionKeyPendingReadyAt].(int64); ok {
		pending.ReadyAt = time.Unix(0, readyAt)
	}

	return pending, true
}

func (h *Handler) storePendingSignIn(w http.ResponseWriter, r *http.Request, sess *sessions.Session, pending *pendingSignIn) error {
	sess.Values[sessionKeyPendingID] = pending.ID
	sess.Values[sessionKeyPendingEmail] = pending.Email
	sess.Values[sessionKeyPendingRemember] = pending.Remember
	sess.Values[sessionKeyPendingReadyAt] = pending.ReadyAt.UnixNano()

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// completeSignIn turns the pending sign-in into the session user.
func (h *Handler) completeSignIn(w http.ResponseWriter, r *http.Request, sess *sessions.Session, pending *pendingSignIn) (*User, error) {
	user := &User{
		Email:      pending.Email,
		SignedInAt: h.now(),
	}

	delete(sess.Values, sessionKeyPendingID)
	delete(sess.Values, sessionKeyPendingEmail)
	delete(sess.Values, sessionKeyPendingRemember)
	delete(sess.Values, sessionKeyPendingReadyAt)

	sess.Values[sessionKeyEmail] = user.Email
	sess.Values[sessionKeySignedInAt] = user.SignedInAt.Unix()

	if pending.Remember {
		sess.Options.MaxAge = int(h.rememberFor.Seconds())
	}

	if err := sess.Save(r, w); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.getSession(r)
	if err != nil {
		return errors.WithStack(err)
	}

	if sess.IsNew {
		return errors.WithStack(errSessionNotFound)
	}

	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
