package assets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler(t *testing.T) {
	handler := NewHandler("/assets")

	type testCase struct {
		Path                string
		ExpectedStatus      int
		ExpectedContentType string
	}

	testCases := []testCase{
		{Path: "/assets/css/campus.css", ExpectedStatus: http.StatusOK, ExpectedContentType: "text/css"},
		{Path: "/assets/img/school.svg", ExpectedStatus: http.StatusOK, ExpectedContentType: "image/svg+xml"},
		{Path: "/assets/css/missing.css", ExpectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if e, g := tc.ExpectedStatus, res.Code; e != g {
			t.Errorf("%s: expected status '%v', got '%v'", tc.Path, e, g)
			continue
		}

		if tc.ExpectedContentType != "" && !strings.HasPrefix(res.Header().Get("Content-Type"), tc.ExpectedContentType) {
			t.Errorf("%s: expected content type '%v', got '%v'", tc.Path, tc.ExpectedContentType, res.Header().Get("Content-Type"))
		}
	}
}
