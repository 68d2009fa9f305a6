package core

// Roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Session identifies who a request is made for.
// It is built by the caller (API middleware, CLI flags) and passed explicitly to services.
type Session struct {
	UserID    int64  `json:"user_id" validate:"gt=0"`
	Username  string `json:"username"`
	Role      string `json:"role" validate:"omitempty,oneof=student instructor admin"`
	RequestID string `json:"request_id"`
}

func (s Session) Validate() error { return Validate.Struct(s) }

func (s Session) IsInstructor() bool {
	return s.Role == RoleInstructor || s.Role == RoleAdmin
}
