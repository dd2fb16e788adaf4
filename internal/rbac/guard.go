package rbac

import (
	"edudash/internal/models"
	"edudash/internal/token"
)

// Effect is the outcome of a guard decision.
type Effect int

const (
	EffectAllow Effect = iota
	// EffectUnauthenticated means no usable token was presented on a
	// protected route. Clients are redirected to login with the original
	// path preserved.
	EffectUnauthenticated
	// EffectForbidden means the token is valid but the role is not in the
	// route's permitted set.
	EffectForbidden
)

// Decision carries the guard's verdict plus the data the enforcement layer
// needs to act on it.
type Decision struct {
	Effect Effect
	// Role is set on Allow (empty for public/unlisted routes reached
	// without a token) and on Forbidden (the attempted role).
	Role models.Role
	// Required is the route's permitted role set, populated on Forbidden.
	Required []models.Role
}

// Guard is the per-request access decision function. It is pure apart from
// clock access inside token verification and is safe for concurrent use.
type Guard struct {
	tokens   *token.Service
	policies []RoutePolicy
	public   []string
}

func NewGuard(tokens *token.Service) *Guard {
	return &Guard{
		tokens:   tokens,
		policies: DefaultPolicies(),
		public:   DefaultPublicRoutes(),
	}
}

// NewGuardWithPolicies builds a guard over an explicit policy table.
func NewGuardWithPolicies(tokens *token.Service, policies []RoutePolicy, public []string) *Guard {
	return &Guard{tokens: tokens, policies: policies, public: public}
}

// Decide evaluates a request path and bearer token against the policy table.
// Paths with no declared policy are allowed through: the table is fail-open
// for unlisted routes, matching the platform's documented posture.
func (g *Guard) Decide(path, rawToken string) Decision {
	if isPublic(g.public, path) {
		return Decision{Effect: EffectAllow}
	}

	policy, ok := matchPolicy(g.policies, path)
	if !ok {
		return Decision{Effect: EffectAllow}
	}

	if rawToken == "" {
		return Decision{Effect: EffectUnauthenticated}
	}

	claims, err := g.tokens.Verify(rawToken)
	if err != nil {
		// Expired and invalid collapse to unauthenticated here; the API
		// layer reports them separately.
		return Decision{Effect: EffectUnauthenticated}
	}

	if !roleAllowed(policy.Roles, claims.Role) {
		return Decision{Effect: EffectForbidden, Role: claims.Role, Required: policy.Roles}
	}

	return Decision{Effect: EffectAllow, Role: claims.Role}
}
