package theme

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestHandler(t *testing.T) {
	type testCase struct {
		Cookie           string
		Next             string
		ExpectedTheme    Theme
		ExpectedLocation string
	}

	testCases := []testCase{
		{Cookie: "", Next: "/settings", ExpectedTheme: Dark, ExpectedLocation: "/settings"},
		{Cookie: "dark", Next: "/?menu=open", ExpectedTheme: Light, ExpectedLocation: "/?menu=open"},
		{Cookie: "light", Next: "https://evil.example.com", ExpectedTheme: Dark, ExpectedLocation: "/"},
		{Cookie: "light", Next: "//evil.example.com", ExpectedTheme: Dark, ExpectedLocation: "/"},
		{Cookie: "unknown", Next: "", ExpectedTheme: Dark, ExpectedLocation: "/"},
	}

	handler := NewHandler(Light)

	for _, tc := range testCases {
		form := url.Values{"next": []string{tc.Next}}
		req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		if tc.Cookie != "" {
			req.AddCookie(&http.Cookie{Name: CookieName, Value: tc.Cookie})
		}

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if e, g := http.StatusSeeOther, res.Code; e != g {
			t.Fatalf("status: expected '%v', got '%v'", e, g)
		}

		if e, g := tc.ExpectedLocation, res.Header().Get("Location"); e != g {
			t.Errorf("location: expected '%v', got '%v'", e, g)
		}

		cookies := res.Result().Cookies()
		if e, g := 1, len(cookies); e != g {
			t.Fatalf("len(cookies): expected '%v', got '%v'", e, g)
		}

		if e, g := string(tc.ExpectedTheme), cookies[0].Value; e != g {
			t.Errorf("theme: expected '%v', got '%v'", e, g)
		}
	}
}

func TestMiddleware(t *testing.T) {
	var resolved Theme

	handler := Middleware(Dark)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if e, g := Dark, resolved; e != g {
		t.Errorf("default theme: expected '%v', got '%v'", e, g)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "light"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if e, g := Light, resolved; e != g {
		t.Errorf("cookie theme: expected '%v', got '%v'", e, g)
	}
}
