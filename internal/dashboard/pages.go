package dashboard

import (
	"net/http"

	"github.com/bornholm/campus/internal/ui"
)

var settingsPanels = []SettingsPanel{
	{
		ID:          "general",
		Title:       "General",
		Description: "School name, academic year and regional preferences.",
		Icon:        "settings",
	},
	{
		ID:          "notifications",
		Title:       "Notifications",
		Description: "Choose which events send emails and in-app alerts.",
		Icon:        "bell",
	},
	{
		ID:          "security",
		Title:       "Security",
		Description: "Password policy, sessions and sign-in options.",
		Icon:        "lock",
	},
	{
		ID:          "roles",
		Title:       "Role Management",
		Description: "Permissions granted to administrators, teachers, students and parents.",
		Icon:        "users",
	},
}

func (h *Handler) serveOverview(w http.ResponseWriter, r *http.Request) {
	sections := make([]ui.NavItem, 0, len(ui.Navigation))
	for _, item := range ui.Navigation {
		if item.Href == r.URL.Path {
			continue
		}
		sections = append(sections, item)
	}

	data := OverviewTemplateData{
		LayoutTemplateData: h.newLayoutData(r, "Dashboard"),
		Sections:           sections,
	}

	h.render(w, r, "overview", data)
}

func (h *Handler) serveSettings(w http.ResponseWriter, r *http.Request) {
	data := SettingsTemplateData{
		LayoutTemplateData: h.newLayoutData(r, "Settings"),
		Panels:             settingsPanels,
	}

	h.render(w, r, "settings", data)
}

func (h *Handler) serveSection(item ui.NavItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := SectionTemplateData{
			LayoutTemplateData: h.newLayoutData(r, item.Name),
			Section:            item,
		}

		h.render(w, r, "section", data)
	}
}
