package form

import (
	"embed"
	"html/template"

	"github.com/bornholm/campus/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// LoginFormTemplateData holds the view state of the login form.
type LoginFormTemplateData struct {
	Action            string
	Email             string
	Password          string
	RememberMe        bool
	ShowPassword      bool
	IsLoading         bool
	Errors            map[string]string
	ForgotPasswordURL string
	RegisterURL       string
}

type LoginPageTemplateData struct {
	ui.HeadTemplateData
	Form LoginFormTemplateData
}

type InfoPageTemplateData struct {
	ui.HeadTemplateData
	Title    string
	Message  string
	LoginURL string
}
