package models

// Role defines what a session user is allowed to do.
type Role string

const (
	RoleUser  Role = "User"
	RoleOwner Role = "Owner"
	RoleAdmin Role = "Admin"
)

// User is the session-scoped identity. It is not persisted business data;
// listings reference it through Property.OwnerID captured at creation time.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
