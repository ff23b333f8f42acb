package form

import (
	"net/http"

	"github.com/bornholm/campus/internal/ui"
)

func (h *Handler) getRegisterPage(w http.ResponseWriter, r *http.Request) {
	data := InfoPageTemplateData{
		HeadTemplateData: ui.NewHeadTemplateData(r, "Request access"),
		Title:            "Request access",
		Message:          "Accounts are created by your school administrator. Contact them to get access to the dashboard.",
		LoginURL:         h.loginURL(),
	}

	h.render(w, r, http.StatusOK, "info", data)
}

func (h *Handler) getForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	data := InfoPageTemplateData{
		HeadTemplateData: ui.NewHeadTemplateData(r, "Forgot password"),
		Title:            "Forgot your password?",
		Message:          "Password resets are handled by your school administrator. Contact them to recover access to your account.",
		LoginURL:         h.loginURL(),
	}

	h.render(w, r, http.StatusOK, "info", data)
}
