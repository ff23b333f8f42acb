package pprof

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
	rpprof "runtime/pprof"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler exposes the runtime profiles and expvar under prefix.
func NewHandler(prefix string) *Handler {
	mux := &http.ServeMux{}

	mux.HandleFunc(fmt.Sprintf("GET %s/{$}", prefix), pprof.Index)
	mux.HandleFunc(fmt.Sprintf("GET %s/cmdline", prefix), pprof.Cmdline)
	mux.HandleFunc(fmt.Sprintf("GET %s/profile", prefix), pprof.Profile)
	mux.HandleFunc(fmt.Sprintf("%s/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("GET %s/trace", prefix), pprof.Trace)
	mux.Handle(fmt.Sprintf("GET %s/vars", prefix), expvar.Handler())

	mux.HandleFunc(fmt.Sprintf("GET %s/{name}", prefix), func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if rpprof.Lookup(name) == nil {
			http.NotFound(w, r)
			return
		}

		pprof.Handler(name).ServeHTTP(w, r)
	})

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
