package models

import (
	"fmt"
)

// Role is the closed set of access levels with a total order:
// owner > edit > view.
type Role string

const (
	RoleOwner Role = "owner"
	RoleEdit  Role = "edit"
	RoleView  Role = "view"
)

func (r Role) rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleEdit:
		return 2
	case RoleView:
		return 1
	}
	return 0
}

// AtLeast reports whether r grants at least the required level. An unknown
// role never satisfies anything.
func (r Role) AtLeast(required Role) bool {
	return r.rank() > 0 && r.rank() >= required.rank()
}

func (r Role) Valid() bool {
	return r.rank() > 0
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
