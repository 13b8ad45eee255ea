package ports

import "github.com/palette/auction-gateway/internal/core/domain"

// RouteDecision tells the SPA where to go. Replace means the redirect must
// overwrite the current history entry so the back button cannot return to
// the disallowed path.
type RouteDecision struct {
	Target  string
	Replace bool
	// Rule names the matched routing rule, for diagnostics and metrics.
	Rule string
}

// RoleRouter decides whether the current navigation path is consistent with
// the session's role. ok is false when no rule matched and no redirect is
// needed; an absent identity never redirects.
type RoleRouter interface {
	Evaluate(identity *domain.Identity, path string) (decision RouteDecision, ok bool)
}
