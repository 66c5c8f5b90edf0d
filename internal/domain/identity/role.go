package identity

import "errors"

var ErrUnknownRole = errors.New("unknown role")

// Role is the backend-assigned account role stored on a profile.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleEnterprise Role = "ENTERPRISE"
	RoleSupport    Role = "SUPPORT"
	RoleUser       Role = "USER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEnterprise, RoleSupport, RoleUser:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrUnknownRole
	}
	return role, nil
}

// UIRole is the derived, display-facing role used to select layout and
// navigation. It is computed, never stored.
type UIRole string

const (
	UIGuest      UIRole = "guest"
	UIAdmin      UIRole = "admin"
	UIEnterprise UIRole = "enterprise"
	UISupport    UIRole = "support"
	UIUser       UIRole = "user"
)

func (r UIRole) String() string {
	return string(r)
}

// UIRoleFor maps a stored role to its UI role. The mapping is total over
// the four defined roles; anything else is an error, never a default.
func UIRoleFor(r Role) (UIRole, error) {
	switch r {
	case RoleAdmin:
		return UIAdmin, nil
	case RoleEnterprise:
		return UIEnterprise, nil
	case RoleSupport:
		return UISupport, nil
	case RoleUser:
		return UIUser, nil
	default:
		return "", ErrUnknownRole
	}
}

// ResolveUIRole computes the viewer's UI role from session state.
// A missing identity or a missing profile both resolve to guest: an
// authenticated user without a profile record must not be granted any
// elevated role. An unrecognized profile role is an error, not a fallback.
func ResolveUIRole(identityPresent bool, profileRole *Role) (UIRole, error) {
	if !identityPresent {
		return UIGuest, nil
	}
	if profileRole == nil {
		return UIGuest, nil
	}
	return UIRoleFor(*profileRole)
}
