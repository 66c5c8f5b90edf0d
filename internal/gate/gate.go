package gate

import (
	"strings"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/session"
)

// State is the gate's view of the session lifecycle.
type State int

const (
	// StateUnresolved: an identity is present but its profile has not
	// settled yet. No protected content, no redirect decision.
	StateUnresolved State = iota
	StateGuest
	StateAuthenticated
	// StateUnrecognized: the profile carries a role outside the known
	// set. Rendered as a distinct account-state view, never mapped to
	// any concrete role.
	StateUnrecognized
)

type Resolution struct {
	State State
	Role  identity.UIRole
	// TimedOut is set when the gate stayed Unresolved longer than its
	// budget; the UI should offer a retry affordance instead of hanging.
	TimedOut bool
}

// Resolve computes the gate state for a session snapshot. The returned
// error is identity.ErrUnknownRole for unmapped roles; callers present
// that as StateUnrecognized.
func Resolve(snap session.Snapshot) (Resolution, error) {
	if snap.Identity == nil {
		return Resolution{State: StateGuest, Role: identity.UIGuest}, nil
	}

	if !snap.ProfileResolved {
		return Resolution{State: StateUnresolved}, nil
	}

	role, err := snap.UIRole()
	if err != nil {
		return Resolution{State: StateUnrecognized}, err
	}

	if role == identity.UIGuest {
		// Identity present but no profile record: defensive guest.
		return Resolution{State: StateGuest, Role: identity.UIGuest}, nil
	}

	return Resolution{State: StateAuthenticated, Role: role}, nil
}

// Layout selects the shell the viewer sees.
type Layout string

const (
	LayoutLoading      Layout = "loading"
	LayoutPublic       Layout = "public"
	LayoutAdmin        Layout = "admin"
	LayoutEnterprise   Layout = "enterprise"
	LayoutSupport      Layout = "support"
	LayoutUser         Layout = "user"
	LayoutUnrecognized Layout = "unrecognized-account"
)

func LayoutFor(res Resolution) Layout {
	switch res.State {
	case StateUnresolved:
		return LayoutLoading
	case StateUnrecognized:
		return LayoutUnrecognized
	case StateAuthenticated:
		switch res.Role {
		case identity.UIAdmin:
			return LayoutAdmin
		case identity.UIEnterprise:
			return LayoutEnterprise
		case identity.UISupport:
			return LayoutSupport
		case identity.UIUser:
			return LayoutUser
		}
	}
	return LayoutPublic
}

// Decision is the outcome of a navigation attempt.
type Decision int

const (
	Allow Decision = iota
	// Pending: the session has not settled; hold the navigation rather
	// than flashing a guest view and redirecting.
	Pending
	RedirectToLogin
	Unauthorized
)

type routeScope int

const (
	scopePublic routeScope = iota
	scopeAuthenticated
	scopeRole
)

// Role-neutral authenticated paths are reachable by every signed-in role.
var neutralPaths = map[string]struct{}{
	"/profile":         {},
	"/change-password": {},
}

var roleScopes = map[string]identity.UIRole{
	"/admin":      identity.UIAdmin,
	"/enterprise": identity.UIEnterprise,
	"/support":    identity.UISupport,
	"/user":       identity.UIUser,
}

func classify(path string) (routeScope, identity.UIRole) {
	if _, ok := neutralPaths[path]; ok {
		return scopeAuthenticated, ""
	}
	for prefix, role := range roleScopes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return scopeRole, role
		}
	}
	return scopePublic, ""
}

// Decide enforces the navigation rules for a resolved gate state.
func Decide(res Resolution, path string) Decision {
	scope, requiredRole := classify(path)

	if scope == scopePublic {
		return Allow
	}

	switch res.State {
	case StateUnresolved:
		return Pending
	case StateGuest:
		return RedirectToLogin
	case StateUnrecognized:
		return Unauthorized
	}

	if scope == scopeRole && res.Role != requiredRole {
		return Unauthorized
	}

	return Allow
}
