package config

import "github.com/goccy/go-yaml"

type HTTP struct {
	Address   InterpolatedString `yaml:"address"`
	BaseURL   InterpolatedString `yaml:"baseUrl"`
	Session   Session            `yaml:"session"`
	RateLimit RateLimit          `yaml:"rateLimit"`
	Debug     InterpolatedBool   `yaml:"debug"`
}

type Session struct {
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString `yaml:"path"`
	HTTPOnly InterpolatedBool   `yaml:"httpOnly"`
	Secure   InterpolatedBool   `yaml:"secure"`
	MaxAge   *InterpolatedInt   `yaml:"maxAge"`
}

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${CAMPUS_HTTP_ADDRESS:-:8080}",
		BaseURL: "${CAMPUS_HTTP_BASE_URL:-http://localhost:8080}",
		Session: Session{
			Keys: InterpolatedStringSlice{},
			Cookie: Cookie{
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				MaxAge:   NewInterpolatedInt(0),
			},
		},
		RateLimit: RateLimit{
			Rate:  1,
			Burst: 5,
		},
		Debug: false,
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":               []*yaml.Comment{yaml.HeadComment(" Public base URL of the application")},
		".session":               []*yaml.Comment{yaml.HeadComment(" Session cookie configuration")},
		".session.keys":          []*yaml.Comment{yaml.HeadComment(" Cookie signing keys, a random key is generated when empty")},
		".session.cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" Default cookie lifetime in seconds, 0 for a browser session cookie")},
		".rateLimit":             []*yaml.Comment{yaml.HeadComment(" Login submissions allowed per second and per client, with burst")},
		".debug":                 []*yaml.Comment{yaml.HeadComment(" Expose profiling endpoints under /debug/pprof")},
	}
}
