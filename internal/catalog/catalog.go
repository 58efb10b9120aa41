package catalog

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no book exists for a given identifier.
var ErrNotFound = errors.New("libro not found")

// ErrEmptyID is returned when an identifier is constructed from an empty string.
var ErrEmptyID = errors.New("libro id must not be empty")

// Libro is a catalog entry. Disponible reports whether the book may
// currently be borrowed.
type Libro struct {
	ID         LibroID   `json:"id"`
	ISBN       string    `json:"isbn"`
	Titulo     string    `json:"titulo"`
	Autor      string    `json:"autor"`
	Disponible bool      `json:"disponible"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LibroID is an opaque catalog identifier. It carries no structure beyond
// non-emptiness; unknown identifiers are rejected by the repository, not here.
type LibroID string

// NewLibroID wraps a raw identifier, rejecting only the empty string.
func NewLibroID(raw string) (LibroID, error) {
	if raw == "" {
		return "", ErrEmptyID
	}
	return LibroID(raw), nil
}

func (id LibroID) String() string {
	return string(id)
}
