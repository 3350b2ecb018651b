package domain

import (
	"net/url"
	"slices"
)

const (
	LoginPath           = "/login"
	HomePath            = "/"
	LandingPath         = "/dashboard"
	ReservationListPath = "/reservas"
)

// Outcome is the result of an authorization check.
type Outcome string

const (
	Allow         Outcome = "allow"
	RedirectLogin Outcome = "redirect_login"
	RedirectHome  Outcome = "redirect_home"
)

// Decision tells the caller whether to render the requested view or where to
// send the visitor instead.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Authorize decides access to a guarded view. It keeps no state: callers
// invoke it on every navigation.
//
// Unauthenticated sessions go to the login page with the requested location
// preserved in the "from" query parameter. When roles is non-empty the user's
// role must be one of them, otherwise the visitor is sent home.
func Authorize(s Session, requested string, roles []string) Decision {
	if !s.Authenticated {
		loc := LoginPath
		if requested != "" {
			loc += "?from=" + url.QueryEscape(requested)
		}
		return Decision{Outcome: RedirectLogin, Location: loc}
	}

	if len(roles) > 0 && !slices.Contains(roles, s.Role()) {
		return Decision{Outcome: RedirectHome, Location: HomePath}
	}

	return Decision{Outcome: Allow}
}
