package ui

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

func TestNavLinks(t *testing.T) {
	type testCase struct {
		Path           string
		ExpectedActive string
	}

	testCases := []testCase{
		{Path: "/dashboard", ExpectedActive: "/dashboard"},
		{Path: "/settings", ExpectedActive: "/settings"},
		{Path: "/students", ExpectedActive: "/students"},
		{Path: "/settings/", ExpectedActive: ""},
		{Path: "/students/42", ExpectedActive: ""},
		{Path: "/", ExpectedActive: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Path, func(t *testing.T) {
			links := NavLinks(tc.Path)

			if e, g := len(Navigation), len(links); e != g {
				t.Fatalf("len(links): expected '%v', got '%v'", e, g)
			}

			active := make([]string, 0)
			for _, l := range links {
				if l.Active {
					active = append(active, l.Href)
				}
			}

			if tc.ExpectedActive == "" {
				if len(active) != 0 {
					t.Errorf("active: expected none, got '%v'", active)
				}
				return
			}

			if e, g := 1, len(active); e != g {
				t.Fatalf("len(active): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedActive, active[0]; e != g {
				t.Errorf("active[0]: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestFindNavItem(t *testing.T) {
	item, exists := FindNavItem("/noticeboard")
	if !exists {
		t.Fatalf("expected '/noticeboard' to be found")
	}

	if e, g := "Noticeboard", item.Name; e != g {
		t.Errorf("item.Name: expected '%v', got '%v'", e, g)
	}

	if _, exists := FindNavItem("/unknown"); exists {
		t.Errorf("expected '/unknown' not to be found")
	}
}

func TestHeaderMenuToggle(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	closed := NewHeaderTemplateData(req)

	if closed.MenuOpen {
		t.Errorf("closed.MenuOpen: expected false")
	}

	if e, g := "/?lang=en&menu=open", closed.ToggleMenuURL; e != g {
		t.Errorf("closed.ToggleMenuURL: expected '%v', got '%v'", e, g)
	}

	req = httptest.NewRequest(http.MethodGet, closed.ToggleMenuURL, nil)
	open := NewHeaderTemplateData(req)

	if !open.MenuOpen {
		t.Errorf("open.MenuOpen: expected true")
	}

	if e, g := "/?lang=en", open.ToggleMenuURL; e != g {
		t.Errorf("open.ToggleMenuURL: expected '%v', got '%v'", e, g)
	}
}

func TestSidebarTemplate(t *testing.T) {
	tmpl, err := Templates(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		URL              string
		ExpectedActive   string
		ExpectedOpen     bool
		ExpectedOverlays int
	}

	testCases := []testCase{
		{URL: "/settings", ExpectedActive: "/settings", ExpectedOpen: false, ExpectedOverlays: 0},
		{URL: "/attendance?sidebar=open", ExpectedActive: "/attendance", ExpectedOpen: true, ExpectedOverlays: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.URL, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.URL, nil)

			var buff bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buff, "sidebar", NewSidebarTemplateData(req)); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			doc, err := goquery.NewDocumentFromReader(&buff)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			active := doc.Find("a.sidebar-link--active")
			if e, g := 1, active.Length(); e != g {
				t.Fatalf("active links: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedActive, active.AttrOr("href", ""); e != g {
				t.Errorf("active href: expected '%v', got '%v'", e, g)
			}

			if e, g := len(Navigation), doc.Find("a.sidebar-link").Length(); e != g {
				t.Errorf("links: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedOpen, doc.Find("aside.sidebar").HasClass("sidebar--open"); e != g {
				t.Errorf("sidebar open: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedOverlays, doc.Find(".sidebar-overlay").Length(); e != g {
				t.Errorf("overlays: expected '%v', got '%v'", e, g)
			}
		})
	}
}
