package config

import "github.com/goccy/go-yaml"

type UI struct {
	Theme InterpolatedString `yaml:"theme"`
}

func NewDefaultUIConfig() UI {
	return UI{
		Theme: "${CAMPUS_UI_THEME:-light}",
	}
}

func NewUIConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":       []*yaml.Comment{yaml.HeadComment(" User interface configuration")},
		".theme": []*yaml.Comment{yaml.HeadComment(" Theme used when the visitor did not pick one (light or dark)")},
	}
}
