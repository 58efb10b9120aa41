package user

import (
	"context"
)

// Repository defines the contract for principal storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
