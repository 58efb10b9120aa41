package main

import (
	"context"
	"net/http"
	"time"

	"biblioteca/internal/auth"
	"biblioteca/internal/catalog"
	"biblioteca/internal/httpx"
	"biblioteca/internal/user"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// newRouter binds the route table. Each catalog operation carries its
// required-role set here, next to the route it guards.
func newRouter(jwtSecret string, db pinger, catalogHandler *catalog.HTTPHandler, authHandler *auth.HTTPHandler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /auth/login", authHandler.Login)

	// /libros/buscar must resolve ahead of /libros/{id}; the 1.22 mux
	// prefers the literal segment over the wildcard.
	anyReader := httpx.RequireAnyRole(jwtSecret, user.RoleLibrarian, user.RoleUser)
	librarianOnly := httpx.RequireAnyRole(jwtSecret, user.RoleLibrarian)

	router.Handle("GET /libros/buscar", anyReader(http.HandlerFunc(catalogHandler.Buscar)))
	router.Handle("GET /libros/{id}", anyReader(http.HandlerFunc(catalogHandler.GetLibro)))
	router.Handle("GET /libros/{id}/disponible", librarianOnly(http.HandlerFunc(catalogHandler.GetDisponible)))
	router.Handle("PUT /libros/{id}/disponibilidad", librarianOnly(http.HandlerFunc(catalogHandler.PutDisponibilidad)))

	return router
}
