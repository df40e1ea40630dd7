package ops

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the operational surface: liveness/readiness probes
// and the pprof handlers. It runs on its own port, separate from the
// product API.
func NewRouter(ready func() bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if ready != nil && !ready() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", http.HandlerFunc(pprof.Index))
		r.Get("/cmdline", http.HandlerFunc(pprof.Cmdline))
		r.Get("/profile", http.HandlerFunc(pprof.Profile))
		r.Get("/symbol", http.HandlerFunc(pprof.Symbol))
		r.Get("/trace", http.HandlerFunc(pprof.Trace))
		r.Get("/{name}", func(w http.ResponseWriter, req *http.Request) {
			pprof.Handler(chi.URLParam(req, "name")).ServeHTTP(w, req)
		})
	})

	return r
}
