package domain

type Role string

const (
	// User can register, log in, read tasks and create new ones.
	RoleUser Role = "user"
	// Admin can additionally edit and delete tasks.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}
