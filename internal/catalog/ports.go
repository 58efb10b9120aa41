package catalog

import (
	"context"
)

// Repository defines the contract for catalog data storage.
type Repository interface {
	Get(ctx context.Context, id LibroID) (Libro, error)
	SetDisponibilidad(ctx context.Context, id LibroID, disponible bool) error
	Search(ctx context.Context, criterio string) ([]Libro, error)
}
