package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the calculator API. Every /interest route shares limiter.
func NewRouter(
	interest *InterestHandler,
	state *StateHandler,
	limiter *RateLimiter,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/interest", func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))

		r.Post("/calculate", interest.Calculate)
		r.Post("/validate-field", interest.ValidateField)
		r.Get("/history", interest.History)

		r.Get("/state", state.GetState)
		r.Put("/state", state.SaveState)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
