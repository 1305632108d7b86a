package gita

import "fmt"

// Role is the three-tier permission level stored on a profile.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer: 0,
	RoleEditor: 1,
	RoleAdmin:  2,
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRank[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// CanAccess reports whether a profile with role r satisfies a check that
// requires at least the given role. Admin satisfies every check; editor
// satisfies editor and viewer checks; viewer satisfies only viewer checks.
func CanAccess(r, required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[required]
	if !ok {
		return false
	}
	return have >= want
}
