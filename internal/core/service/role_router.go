package service

import (
	"strings"

	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

// routeRule is one entry in the ordered decision list: when applies matches
// the session's role and path, the router redirects to target.
type routeRule struct {
	name    string
	applies func(role domain.Role, path string) bool
	target  string
}

// RoleRouter enforces that a session's navigation path is consistent with its
// role. Rules are evaluated in order, first match wins; an absent identity
// matches nothing. All redirects use replace semantics so the disallowed path
// does not remain in browser history.
type RoleRouter struct {
	rules []routeRule
}

func NewRoleRouter() *RoleRouter {
	return &RoleRouter{rules: []routeRule{
		{
			name: "admin_outside_admin_area",
			applies: func(role domain.Role, path string) bool {
				return role == domain.RoleAdmin && !strings.HasPrefix(path, domain.PathAdminPrefix)
			},
			target: domain.PathAdminDashboard,
		},
		{
			name: "seller_outside_seller_area",
			applies: func(role domain.Role, path string) bool {
				return role == domain.RoleSeller &&
					!strings.HasPrefix(path, domain.PathSellerPrefix) &&
					!strings.HasPrefix(path, domain.PathAdminPrefix) &&
					!domain.IsPublicRoute(path)
			},
			target: domain.PathSellerDashboard,
		},
		{
			name: "customer_on_auth_page",
			applies: func(role domain.Role, path string) bool {
				return role == domain.RoleCustomer && (path == domain.PathLogin || path == domain.PathSignup)
			},
			target: domain.PathHome,
		},
	}}
}

// Evaluate returns the redirect decision for the given identity and path.
// ok is false when the path is allowed as-is.
func (r *RoleRouter) Evaluate(identity *domain.Identity, path string) (ports.RouteDecision, bool) {
	if identity == nil {
		return ports.RouteDecision{}, false
	}
	for _, rule := range r.rules {
		if rule.applies(identity.Role, path) {
			return ports.RouteDecision{Target: rule.target, Replace: true, Rule: rule.name}, true
		}
	}
	return ports.RouteDecision{}, false
}
