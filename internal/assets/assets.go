package assets

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/pkg/errors"
)

//go:embed static/**
var staticFs embed.FS

// NewHandler serves the embedded stylesheets and images under the given prefix.
func NewHandler(prefix string) http.Handler {
	root, err := fs.Sub(staticFs, "static")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return http.StripPrefix(prefix, http.FileServerFS(root))
}
