package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"biblioteca/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// GetLibro handles GET /libros/{id}
// @Summary Get a book by ID
// @Description Retrieve a single catalog entry by its identifier
// @Tags libros
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /libros/{id} [get]
func (h *HTTPHandler) GetLibro(w http.ResponseWriter, r *http.Request) {
	id, err := NewLibroID(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID is required", nil)
		return
	}

	libro, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, libro, nil)
}

// GetDisponible handles GET /libros/{id}/disponible
// @Summary Check book availability
// @Description Report whether a book may currently be borrowed. An unknown
// @Description identifier reads as not available rather than as an error.
// @Tags libros
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /libros/{id}/disponible [get]
func (h *HTTPHandler) GetDisponible(w http.ResponseWriter, r *http.Request) {
	id, err := NewLibroID(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID is required", nil)
		return
	}

	disponible, err := h.svc.Disponible(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, disponible, nil)
}

// PutDisponibilidad handles PUT /libros/{id}/disponibilidad
// @Summary Update book availability
// @Description Set the availability flag for a book. The body is a bare
// @Description JSON boolean (true = available, false = not available).
// @Tags libros
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param disponible body boolean true "New availability"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /libros/{id}/disponibilidad [put]
func (h *HTTPHandler) PutDisponibilidad(w http.ResponseWriter, r *http.Request) {
	id, err := NewLibroID(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Book ID is required", nil)
		return
	}

	var disponible bool
	if err := json.NewDecoder(r.Body).Decode(&disponible); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Body must be a JSON boolean", nil)
		return
	}

	if err := h.svc.SetDisponibilidad(r.Context(), id, disponible); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, nil, nil)
}

// Buscar handles GET /libros/buscar
// @Summary Search the catalog
// @Description Free-text search over title, author and ISBN
// @Tags libros
// @Produce json
// @Param criterio query string true "Search text"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /libros/buscar [get]
func (h *HTTPHandler) Buscar(w http.ResponseWriter, r *http.Request) {
	criterio := r.URL.Query().Get("criterio")

	libros, err := h.svc.Search(r.Context(), criterio)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if libros == nil {
		libros = []Libro{}
	}
	httpx.JSONSuccess(w, r, libros, map[string]any{"total": len(libros)})
}
