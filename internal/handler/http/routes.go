package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the emulator router. Routing itself happens in the dispatcher,
// so every path and method reaches the invoke handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Handle("/*", h.invoke())
	router.MethodNotAllowed(h.invoke())

	return router
}
