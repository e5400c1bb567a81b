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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)
	})

	// routes scoped to the authenticated identity
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/tasks/to-do", h.createTask)
		r.Get("/tasks", h.getAllTasks)
		r.Get("/tasks/{id}", h.getTask)
		r.Patch("/tasks/{id}", h.updateTask)
		r.Delete("/tasks/{id}", h.deleteTask)
	})

	return router
}
