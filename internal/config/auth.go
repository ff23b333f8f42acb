package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type Auth struct {
	LoginDelay        *InterpolatedDuration `yaml:"loginDelay"`
	PostLoginRedirect InterpolatedString    `yaml:"postLoginRedirect"`
	RememberFor       *InterpolatedDuration `yaml:"rememberFor"`
	RequireLogin      InterpolatedBool      `yaml:"requireLogin"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		LoginDelay:        NewInterpolatedDuration(1500 * time.Millisecond),
		PostLoginRedirect: "${CAMPUS_AUTH_POST_LOGIN_REDIRECT:-/dashboard}",
		RememberFor:       NewInterpolatedDuration(30 * 24 * time.Hour),
		RequireLogin:      false,
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                   []*yaml.Comment{yaml.HeadComment(" Simulated authentication configuration")},
		".loginDelay":        []*yaml.Comment{yaml.HeadComment(" Fixed delay between the login submission and the redirection")},
		".postLoginRedirect": []*yaml.Comment{yaml.HeadComment(" Route reached once signed in")},
		".rememberFor":       []*yaml.Comment{yaml.HeadComment(" Session lifetime when 'Remember me' is checked")},
		".requireLogin":      []*yaml.Comment{yaml.HeadComment(" Redirect anonymous visitors of the dashboard pages to the login page")},
	}
}
