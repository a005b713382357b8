package model

import "fmt"

// Role is the closed set of account types
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
)

// ParseRole converts a wire value into a Role, rejecting unknown values
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	return r.bit() != 0
}

// Privileged reports whether the role may only be granted by an admin
func (r Role) Privileged() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	case RoleCustomer:
		return false
	}
	return false
}

func (r Role) bit() RoleSet {
	switch r {
	case RoleCustomer:
		return 1 << 0
	case RoleAdmin:
		return 1 << 1
	case RoleStaff:
		return 1 << 2
	}
	return 0
}

// RoleSet is an allow-list of roles declared once per protected route
type RoleSet uint8

// NewRoleSet builds a RoleSet; unknown roles are ignored
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s |= r.bit()
	}
	return s
}

// AnyRole allows every authenticated principal
var AnyRole = NewRoleSet(RoleCustomer, RoleAdmin, RoleStaff)

// Contains reports whether r is in the set. Unknown roles are never contained.
func (s RoleSet) Contains(r Role) bool {
	b := r.bit()
	return b != 0 && s&b != 0
}

func (s RoleSet) Roles() []Role {
	var roles []Role
	for _, r := range []Role{RoleCustomer, RoleAdmin, RoleStaff} {
		if s.Contains(r) {
			roles = append(roles, r)
		}
	}
	return roles
}
