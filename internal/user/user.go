package user

import "time"

// Roles and statuses stored on the users table.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

type User struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password,omitempty"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	Phone     *string    `json:"phone,omitempty"`
	Address   *string    `json:"address,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Sanitize blanks the credential hash before a user leaves the API.
func Sanitize(u User) User {
	u.Password = ""
	return u
}
