package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"wardrobe-api/internal/container"
	handlers "wardrobe-api/internal/interface/http"
	"wardrobe-api/internal/interface/middleware"
	"wardrobe-api/pkg/helpers"
)

// AuthModule wires the public registration and login endpoints plus the
// authenticated profile read.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight per-IP limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.GET("/auth/me", middleware.Auth(m.JWT), m.Handler.Me)
}
