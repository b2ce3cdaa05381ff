package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/kyc-portal/internal/application"
	"github.com/veridoc/kyc-portal/internal/domain/entity"
	"github.com/veridoc/kyc-portal/pkg/response"
	"github.com/veridoc/kyc-portal/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userView is the account projection returned to clients; it never
// carries the credential hash.
func userView(u *entity.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"fullName": u.FullName,
		"email":    u.Email,
		"role":     u.Role,
	}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "All fields required", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusBadRequest, "Email already registered", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("register failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(u), "token": token}, "registered")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "All fields required", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// unknown email and wrong password share one message
			response.Error[any](c, http.StatusBadRequest, "Invalid credentials", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(u), "token": token}, "login successful")
}
