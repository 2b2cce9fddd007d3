package domain

// Role classifies what an actor is allowed to do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// Actor is the authenticated identity held by the session. Identity is
// immutable once issued; a session change always swaps the whole value.
type Actor struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	Role        Role   `json:"role"`
}

// Satisfies reports whether the actor's role covers the requested one.
// Admin implicitly contains every lesser role.
func (a Actor) Satisfies(role Role) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.Role == role
}

// LoginResult is the outward outcome of an authentication attempt.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
