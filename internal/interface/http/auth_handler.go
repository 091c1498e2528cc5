package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wardrobe-api/config"
	"wardrobe-api/internal/application"
	"wardrobe-api/internal/interface/middleware"
	"wardrobe-api/pkg/helpers"
	"wardrobe-api/pkg/mailer"
	"wardrobe-api/pkg/response"
	"wardrobe-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
	Pub    *helpers.RabbitPublisher
	Cfg    *config.Config
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, pub *helpers.RabbitPublisher, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Pub: pub, Cfg: cfg}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	userID, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingCredentials):
			response.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, application.ErrEmailExists):
			response.Error(c, http.StatusConflict, "Email already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.sendWelcomeEmail(c, req.Name, strings.TrimSpace(req.Email))
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "userId": userID})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingCredentials):
			response.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	u, err := h.Svc.GetUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, u)
}

// sendWelcomeEmail enqueues a welcome mail job; failures never fail registration.
func (h *AuthHandler) sendWelcomeEmail(c *gin.Context, name, email string) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + name
	}
	job := mailer.EmailJob{
		To:      email,
		Subject: "Welcome to " + h.Cfg.AppName,
		Text:    greeting + ", your wardrobe account is ready. Log in and start cataloguing your clothes.",
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("failed to publish welcome email job")
	}
}
