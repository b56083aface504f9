package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
	}))
	router.Use(middleware.Compress(5))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes guarded by the access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/recipe", func(r chi.Router) {
			r.Post("/", h.createRecipe)
			r.Get("/", h.searchRecipes)
			r.Get("/{id}", h.getRecipe)
			r.Patch("/{id}", h.updateRecipe)
			r.Delete("/{id}", h.deleteRecipe)
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/", h.searchCategories)
			r.Get("/{id}", h.getCategory)
		})
	})

	return router
}
