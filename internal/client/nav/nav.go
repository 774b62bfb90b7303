// Package nav is the navigation policy: a pure function of (session, route)
// deciding which screens are reachable. Screens never re-derive role checks
// themselves; they ask this package.
package nav

import "github.com/Asad-NCS/lostandfound/internal/domain"

// Route identifies a screen of the client.
type Route string

const (
	RouteLogin       Route = "login"
	RouteSignup      Route = "signup"
	RouteVerify      Route = "verify"
	RouteHome        Route = "home"
	RouteItems       Route = "items"
	RouteItemDetail  Route = "item-detail"
	RouteSubmitItem  Route = "submit-item"
	RouteMyClaims    Route = "my-claims"
	RouteAdminReview Route = "admin-review"
)

var unauthenticated = []Route{RouteLogin, RouteSignup, RouteVerify}

var authenticated = []Route{
	RouteHome, RouteItems, RouteItemDetail, RouteSubmitItem, RouteMyClaims, RouteVerify,
}

// Allowed reports whether the route is reachable for the given session.
// No session: only login, signup and verify. A user session: every
// authenticated route except admin review. An admin session: all of them.
func Allowed(u *domain.User, r Route) bool {
	if u == nil {
		for _, route := range unauthenticated {
			if r == route {
				return true
			}
		}
		return false
	}
	if r == RouteAdminReview {
		return u.IsAdmin()
	}
	for _, route := range authenticated {
		if r == route {
			return true
		}
	}
	return false
}

// Routes lists every route reachable for the given session, recomputed on
// each call so a session change immediately yields the new set.
func Routes(u *domain.User) []Route {
	if u == nil {
		return append([]Route(nil), unauthenticated...)
	}
	routes := append([]Route(nil), authenticated...)
	if u.IsAdmin() {
		routes = append(routes, RouteAdminReview)
	}
	return routes
}
