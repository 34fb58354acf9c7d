// Package session models who is making a staff request.
package session

import "restaurant-booking/internal/domain/user"

// State is either Anonymous or Authenticated. The zero value is Anonymous.
type State struct {
	principal     user.Principal
	authenticated bool
}

func Anonymous() State {
	return State{}
}

func Authenticated(p user.Principal) State {
	return State{principal: p, authenticated: true}
}

func (s State) IsAuthenticated() bool {
	return s.authenticated
}

// Principal returns the signed-in staff member, ok is false for Anonymous.
func (s State) Principal() (user.Principal, bool) {
	return s.principal, s.authenticated
}

// Allows reports whether the session may act with at least the min role.
func (s State) Allows(min user.Role) bool {
	return s.authenticated && s.principal.Role.AtLeast(min)
}
