package domain

import (
	"fmt"
	"time"
)

// Role is what a user may do cluster-wide.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

func AsRole(role string) (Role, error) {
	switch Role(role) {
	case RoleAdmin, RoleOwner, RoleUser:
		return Role(role), nil
	default:
		return "", fmt.Errorf("'%s' is not Role", role)
	}
}

// User is an account known to the catalog. Accounts arrive from the
// bootstrap seeding routine or from registration and are referenced by
// project ownership and permission grants; there is no lifecycle
// beyond activation.
type User struct {
	Id        string
	Email     string
	Name      string
	Role      Role
	Active    bool
	Provider  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == nil && other == nil
	}
	return u.Id == other.Id &&
		u.Email == other.Email &&
		u.Name == other.Name &&
		u.Role == other.Role &&
		u.Active == other.Active &&
		u.Provider == other.Provider
}
