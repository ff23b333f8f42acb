package setup

import (
	"context"
	"crypto/rand"
	"net/http"
	"time"

	"github.com/bornholm/campus/internal/config"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var NewSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	maxAge := 0
	if conf.HTTP.Session.Cookie.MaxAge != nil {
		maxAge = int(*conf.HTTP.Session.Cookie.MaxAge)
	}

	sessionStore.MaxAge(maxAge)

	// Signed cookies are rejected once older than the longest
	// lifetime a browser may keep them for.
	serverMaxAge := maxAge
	if conf.Auth.RememberFor != nil {
		serverMaxAge = max(serverMaxAge, int(time.Duration(*conf.Auth.RememberFor).Seconds()))
	}

	for _, codec := range sessionStore.Codecs {
		if c, ok := codec.(*securecookie.SecureCookie); ok {
			c.MaxAge(serverMaxAge)
		}
	}

	sessionStore.Options.Path = string(conf.HTTP.Session.Cookie.Path)
	sessionStore.Options.HttpOnly = bool(conf.HTTP.Session.Cookie.HTTPOnly)
	sessionStore.Options.Secure = bool(conf.HTTP.Session.Cookie.Secure)
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
