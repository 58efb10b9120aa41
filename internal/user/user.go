package user

import "time"

// Roles attached to authenticated principals. The catalog surface is
// authorized purely by these labels.
const (
	RoleLibrarian = "LIBRARIAN"
	RoleUser      = "USER"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"` // LIBRARIAN, USER
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
