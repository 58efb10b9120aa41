package catalog

import (
	"context"
	"errors"
)

// Service provides catalog-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the book for the given identifier.
func (s *Service) Get(ctx context.Context, id LibroID) (Libro, error) {
	return s.repo.Get(ctx, id)
}

// Disponible reports whether the book identified by id may be borrowed.
// An identifier with no catalog entry reads as not available rather than
// as an error; circulation treats the two cases identically.
func (s *Service) Disponible(ctx context.Context, id LibroID) (bool, error) {
	libro, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return libro.Disponible, nil
}

// SetDisponibilidad updates the availability flag for the given book.
func (s *Service) SetDisponibilidad(ctx context.Context, id LibroID, disponible bool) error {
	return s.repo.SetDisponibilidad(ctx, id, disponible)
}

// Search returns the books matching the free-text criterion, in the
// order the repository produces them.
func (s *Service) Search(ctx context.Context, criterio string) ([]Libro, error) {
	return s.repo.Search(ctx, criterio)
}
