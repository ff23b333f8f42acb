package setup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/campus/internal/config"
	"github.com/bornholm/campus/internal/theme"
	"github.com/pkg/errors"
)

func TestServerRoutes(t *testing.T) {
	type testCase struct {
		Method           string
		Target           string
		ExpectedCode     int
		ExpectedLocation string
	}

	testCases := []testCase{
		{Method: http.MethodGet, Target: "/", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/auth/login", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/auth/register", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/auth/forgot-password", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/dashboard", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/settings", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/students", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/assets/css/campus.css", ExpectedCode: http.StatusOK},
		{Method: http.MethodGet, Target: "/unknown", ExpectedCode: http.StatusNotFound},
		{Method: http.MethodGet, Target: "/debug/pprof/", ExpectedCode: http.StatusNotFound},
		{Method: http.MethodGet, Target: "/auth/login/continue", ExpectedCode: http.StatusSeeOther, ExpectedLocation: "/auth/login"},
		{Method: http.MethodPost, Target: "/theme?next=/settings", ExpectedCode: http.StatusSeeOther, ExpectedLocation: "/settings"},
	}

	handler := newTestServerHandler(t, func(conf *config.Config) {})

	for _, tc := range testCases {
		t.Run(tc.Method+" "+tc.Target, func(t *testing.T) {
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(tc.Method, tc.Target, nil))

			if e, g := tc.ExpectedCode, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if tc.ExpectedLocation == "" {
				return
			}

			if e, g := tc.ExpectedLocation, res.Header().Get("Location"); e != g {
				t.Errorf("location: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestRequireLogin(t *testing.T) {
	handler := newTestServerHandler(t, func(conf *config.Config) {
		conf.Auth.RequireLogin = true
		conf.Auth.LoginDelay = config.NewInterpolatedDuration(0)
	})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/settings", nil))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/auth/login", res.Header().Get("Location"); e != g {
		t.Errorf("location: expected '%v', got '%v'", e, g)
	}

	form := url.Values{
		"email":    []string{"principal@school.test"},
		"password": []string{"secret"},
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	cookies := res.Result().Cookies()

	req = httptest.NewRequest(http.MethodGet, "/auth/login/continue", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/dashboard", res.Header().Get("Location"); e != g {
		t.Errorf("location: expected '%v', got '%v'", e, g)
	}

	cookies = res.Result().Cookies()

	req = httptest.NewRequest(http.MethodGet, "/settings", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if !strings.Contains(res.Body.String(), "principal@school.test") {
		t.Errorf("expected signed in email to be rendered")
	}
}

func TestDefaultTheme(t *testing.T) {
	handler := newTestServerHandler(t, func(conf *config.Config) {
		conf.UI.Theme = "dark"
		conf.HTTP.Debug = true
	})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(res.Body.String(), `class="theme-dark"`) {
		t.Errorf("expected dark theme to be rendered")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: string(theme.Light)})

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if !strings.Contains(res.Body.String(), `class="theme-light"`) {
		t.Errorf("expected cookie theme to be rendered")
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}
}

func TestUnknownTheme(t *testing.T) {
	conf := newTestConfig(t)
	conf.UI.Theme = "sepia"

	if _, err := NewHandlerFromConfig(context.Background(), conf); err == nil {
		t.Errorf("expected an error")
	}
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	conf := config.NewDefaultConfig()

	if err := config.Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	conf.UI.Theme = "light"
	conf.HTTP.Session.Keys = config.InterpolatedStringSlice{"0123456789abcdef0123456789abcdef"}
	conf.Auth.LoginDelay = config.NewInterpolatedDuration(time.Second)

	return conf
}

func newTestServerHandler(t *testing.T, configure func(conf *config.Config)) http.Handler {
	t.Helper()

	conf := newTestConfig(t)
	configure(conf)

	handler, err := NewHandlerFromConfig(context.Background(), conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return handler
}
