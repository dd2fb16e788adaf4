package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"edudash/internal/metrics"
	"edudash/internal/middleware"
	"edudash/internal/models"
	"edudash/internal/service"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
	Logout(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	collector   *metrics.Collector
	log         *zap.Logger
}

func NewAuthHandler(authService service.AuthService, collector *metrics.Collector, log *zap.Logger) AuthHandler {
	return &authHandler{authService: authService, collector: collector, log: log}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=student teacher admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorBody(err))
		return
	}

	role, _ := models.ParseRole(req.Role) // empty role falls back to student in the service

	user, tokenString, err := h.authService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Registration failed",
				"message": "User with this email already exists",
			})
			return
		}
		h.log.Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Registration failed",
			"message": "Internal server error",
		})
		return
	}

	h.collector.RecordRegistration()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user.PublicProfile(),
		"token":   tokenString,
	})
}

func (h *authHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.collector.RecordLogin("invalid_input")
		c.JSON(http.StatusBadRequest, validationErrorBody(err))
		return
	}

	user, tokenString, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.collector.RecordLogin("invalid_credentials")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Login failed",
				"message": "Invalid email or password",
			})
		case errors.Is(err, service.ErrAccountDeactivated):
			h.collector.RecordLogin("deactivated")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Login failed",
				"message": "Account is deactivated",
			})
		default:
			h.collector.RecordLogin("error")
			h.log.Error("Failed to login user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Login failed",
				"message": "Internal server error",
			})
		}
		return
	}

	h.collector.RecordLogin("success")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user.PublicProfile(),
		"token":   tokenString,
	})
}

func (h *authHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication Error",
			"message": "Authorization required",
		})
		return
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication Error",
				"message": "Invalid token",
			})
			return
		}
		h.log.Error("Failed to load current user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get user",
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.PublicProfile(),
	})
}

func (h *authHandler) Logout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication Error",
			"message": "Authorization required",
		})
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		h.log.Error("Failed to logout user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Logout failed",
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}

// validationErrorBody turns binding failures into field-level messages so
// bad input never reaches the service layer unexplained.
func validationErrorBody(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{
			"error":   "Validation Error",
			"message": "Invalid request body",
		}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fieldMessage(fe)
	}
	return gin.H{
		"error":   "Validation Error",
		"message": "Request validation failed",
		"details": details,
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		switch fe.Tag() {
		case "required":
			return "Name is required"
		case "min":
			return "Name must be at least 2 characters long"
		case "max":
			return "Name cannot exceed 50 characters"
		}
	case "Email":
		switch fe.Tag() {
		case "required":
			return "Email is required"
		case "email":
			return "Please provide a valid email address"
		}
	case "Password":
		switch fe.Tag() {
		case "required":
			return "Password is required"
		case "min":
			return "Password must be at least 8 characters long"
		}
	case "Role":
		return "Role must be student, teacher, or admin"
	}
	return "Invalid value"
}
