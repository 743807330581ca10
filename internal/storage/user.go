package storage

import "errors"

// ErrNotFound is wrapped by every storage lookup that misses.
var ErrNotFound = errors.New("record not found")

type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleSupervisor Role = "Supervisor"
	RoleOperator   Role = "Operator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSupervisor, RoleOperator:
		return true
	}
	return false
}

// Leads reports whether the role is attributed team-level metrics
// instead of personal ones in reports.
func (r Role) Leads() bool {
	return r == RoleManager || r == RoleSupervisor
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
	EmployeeID   string `json:"employeeId,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Role         Role   `json:"role"`
}

// Public strips the password hash. Every read path must go through it.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
