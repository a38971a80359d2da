package models

// Role is the closed set of account roles. Anything outside this set is
// rejected at the authorization boundary.
type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleOfficial Role = "official"
	RoleAnalyst  Role = "analyst"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw string onto a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCitizen, RoleOfficial, RoleAnalyst, RoleAdmin:
		return Role(s), true
	}
	return "", false
}
