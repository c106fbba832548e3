package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/login", h.login)
		r.Post("/users", h.createUser)
		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Get("/health", h.health)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", h.listBlogs)
			// like updates are deliberately open, see BlogService.UpdateBlog
			r.Put("/{id}", h.updateBlog)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createBlog)
				r.Delete("/{id}", h.deleteBlog)
			})
		})
	})

	return router
}
