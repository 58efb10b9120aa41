package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Get(ctx context.Context, id LibroID) (Libro, error) {
	const query = `
		SELECT id, isbn, titulo, autor, disponible, created_at, updated_at
		FROM libros
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var l Libro
	err := r.db.QueryRow(timeoutCtx, query, id.String()).Scan(
		&l.ID, &l.ISBN, &l.Titulo, &l.Autor, &l.Disponible,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Libro{}, ErrNotFound
		}
		return Libro{}, err
	}
	return l, nil
}

// SetDisponibilidad applies the flag. An unknown identifier updates zero
// rows and is not an error; the write surface reports only authorization
// and malformed-input failures.
func (r *PostgresRepo) SetDisponibilidad(ctx context.Context, id LibroID, disponible bool) error {
	const query = `
		UPDATE libros
		SET disponible = $2, updated_at = NOW()
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(timeoutCtx, query, id.String(), disponible)
	return err
}

func (r *PostgresRepo) Search(ctx context.Context, criterio string) ([]Libro, error) {
	const query = `
		SELECT id, isbn, titulo, autor, disponible, created_at, updated_at
		FROM libros
		WHERE titulo ILIKE $1 OR autor ILIKE $1 OR isbn ILIKE $1
		ORDER BY titulo ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, "%"+criterio+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Libro
	for rows.Next() {
		var l Libro
		if err := rows.Scan(
			&l.ID, &l.ISBN, &l.Titulo, &l.Autor, &l.Disponible,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
