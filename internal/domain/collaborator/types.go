package collaborator

import "errors"

var ErrInvalidRole = errors.New("invalid collaborator role")

type Role string

const (
	// RoleBranch is a point-of-sale account scoped to a single branch.
	RoleBranch Role = "branch"
	// RoleOwner manages all branches and promotions of the business.
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleBranch, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
