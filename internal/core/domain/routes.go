package domain

import "strings"

// Navigation paths the gateway reasons about. These mirror the SPA's route
// table; everything else is opaque to the role router.
const (
	PathHome            = "/"
	PathLogin           = "/login"
	PathSignup          = "/signup"
	PathAdminPrefix     = "/admin"
	PathSellerPrefix    = "/seller"
	PathAdminDashboard  = "/admin/dashboard"
	PathSellerDashboard = "/seller/dashboard"
)

// publicRoutes are reachable by every role, exact or as a sub-path.
var publicRoutes = []string{
	"/",
	"/auctions",
	"/artists",
	"/about",
	"/faqs",
	"/artwork",
	"/artist",
}

// IsPublicRoute reports whether path is one of the public routes or a
// sub-path of one ("/artwork/42" counts, "/artworks" does not).
func IsPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if path == route || strings.HasPrefix(path, route+"/") {
			return true
		}
	}
	return false
}
