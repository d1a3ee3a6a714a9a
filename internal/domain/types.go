package domain

// ID is used across domain entities.
type ID = int64

// Role values carried on the session claim.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Session carries the authenticated account resolved once per request and
// threaded to handlers; nothing reads ambient auth state.
type Session struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the session may use the back-office surface.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
