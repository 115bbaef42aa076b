// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User is a marketplace account. UserType is fixed at registration.
type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Location     string    `db:"location"`
	UserType     string    `db:"user_type"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const (
	TypeFarmer = "farmer"
	TypeBuyer  = "buyer"
)
