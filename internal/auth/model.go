package auth

type Role string

const (
	RoleTeacher    Role = "teacher"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Account is a teacher or admin row. Passwords never leave the store layer's
// authenticate queries, so the type carries none.
type Account struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
