package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hppyapp/hppy-backend/internal/application"
	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	"github.com/hppyapp/hppy-backend/internal/interface/middleware"
	"github.com/hppyapp/hppy-backend/pkg/response"
	"github.com/hppyapp/hppy-backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userSummary(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "phone": u.Phone}
}

// Register POST /api/auth/register {phone, password}
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondErr(c, h.Logger, "register", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   res.Token,
		"user":    userSummary(res.User),
	})
}

// Login POST /api/auth/login {phone, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondErr(c, h.Logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   res.Token,
		"user":    userSummary(res.User),
	})
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.CurrentUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondErr(c, h.Logger, "me", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"id": u.ID, "phone": u.Phone, "created_at": u.CreatedAt},
	})
}
