package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edudash/internal/middleware"
	"edudash/internal/models"
	"edudash/internal/rbac"
)

// DashboardHandler serves the role-specific dashboard aggregates. Data is
// static mock content; the interesting part is that each endpoint sits
// behind the same role policy as the edge routes.
type DashboardHandler interface {
	Overview(c *gin.Context)
	Teacher(c *gin.Context)
	Admin(c *gin.Context)
}

type dashboardHandler struct {
	log *zap.Logger
}

func NewDashboardHandler(log *zap.Logger) DashboardHandler {
	return &dashboardHandler{log: log}
}

func (h *dashboardHandler) Overview(c *gin.Context) {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication Error",
			"message": "Authorization required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"role":         role,
		"capabilities": rbac.CapabilitiesFor(role),
		"stats":        overviewStats(role),
	})
}

func (h *dashboardHandler) Teacher(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"activeCourses":      4,
			"enrolledStudents":   112,
			"pendingSubmissions": 23,
			"averageGrade":       81.4,
		},
	})
}

func (h *dashboardHandler) Admin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalUsers":     1324,
			"totalCourses":   87,
			"activeSessions": 291,
			"storageUsedMB":  5420,
		},
	})
}

func overviewStats(role models.Role) gin.H {
	switch role {
	case models.RoleTeacher:
		return gin.H{"courses": 4, "students": 112, "assignmentsToGrade": 23}
	case models.RoleAdmin:
		return gin.H{"users": 1324, "courses": 87, "alerts": 2}
	default:
		return gin.H{"enrolledCourses": 5, "completedAssignments": 34, "gpa": 3.6}
	}
}
