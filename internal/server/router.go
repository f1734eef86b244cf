package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/diewo77/invoice-lite/internal/handlers"
	"github.com/diewo77/invoice-lite/internal/httpx"
	"github.com/diewo77/invoice-lite/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(st *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ih := handlers.NewInvoiceHandler(st)
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", ih.List)
		r.Post("/", ih.Save)
		r.Post("/preview", ih.Preview)
		r.Get("/{id}", ih.Get)
		r.Delete("/{id}", ih.Delete)
		r.Post("/{id}/status", ih.ToggleStatus)
		r.Get("/{id}/share", ih.Share)
		r.Get("/{id}/pdf", ih.PDF)
	})

	sh := handlers.NewSettingsHandler(st)
	r.Get("/settings", sh.Get)
	r.Put("/settings", sh.Update)
	r.Post("/reset", sh.Reset)

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
