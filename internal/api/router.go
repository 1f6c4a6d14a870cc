package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"srtran/internal/config"
	"srtran/internal/logging"
	"srtran/internal/translate"
)

func NewRouter(
	cfg *config.Config,
	logger *logging.Logger,
	translator translate.Translator,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(cors.Handler(corsOptions(cfg.Server.AllowedOrigins)))

	h := NewTranslateHandler(cfg, logger, translator)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)
		r.Post("/translate", h.Translate)
	})

	return r
}
