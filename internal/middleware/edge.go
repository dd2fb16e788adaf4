package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edudash/internal/metrics"
	"edudash/internal/models"
	"edudash/internal/rbac"
)

// RoleHeader carries the resolved role to downstream handlers on allowed
// requests.
const RoleHeader = "X-User-Role"

// defaultEdgeExclusions are paths the edge guard never inspects: the API
// layer enforces itself, and static/health/metrics endpoints stay open.
var defaultEdgeExclusions = []string{
	"/api/",
	"/ping",
	"/metrics",
	"/favicon.ico",
	"/static/",
}

// EdgeGuard applies the access guard at the routing boundary. Denied
// requests are redirected rather than rejected: unauthenticated clients go
// to login with the original path preserved, authenticated-but-forbidden
// clients go to the unauthorized page with diagnostic query parameters.
func EdgeGuard(guard *rbac.Guard, collector *metrics.Collector, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range defaultEdgeExclusions {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		decision := guard.Decide(path, TokenFromRequest(c))
		switch decision.Effect {
		case rbac.EffectUnauthenticated:
			collector.RecordGuardDecision("unauthenticated")
			loginURL := url.URL{Path: "/login"}
			q := loginURL.Query()
			q.Set("redirect", path)
			loginURL.RawQuery = q.Encode()
			c.Redirect(http.StatusFound, loginURL.String())
			c.Abort()
		case rbac.EffectForbidden:
			collector.RecordGuardDecision("forbidden")
			logger.Warn("Role denied at edge",
				zap.String("path", path),
				zap.String("role", string(decision.Role)))
			unauthorizedURL := url.URL{Path: "/unauthorized"}
			q := unauthorizedURL.Query()
			q.Set("from", path)
			q.Set("requiredRoles", joinRoles(decision.Required))
			q.Set("userRole", string(decision.Role))
			unauthorizedURL.RawQuery = q.Encode()
			c.Redirect(http.StatusFound, unauthorizedURL.String())
			c.Abort()
		default:
			collector.RecordGuardDecision("allow")
			if decision.Role != "" {
				c.Header(RoleHeader, string(decision.Role))
				c.Set(ContextRoleKey, decision.Role)
			}
			c.Next()
		}
	}
}

func joinRoles(roles []models.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}
