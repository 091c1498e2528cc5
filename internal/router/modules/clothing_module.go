package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"wardrobe-api/internal/container"
	handlers "wardrobe-api/internal/interface/http"
	"wardrobe-api/internal/interface/middleware"
	"wardrobe-api/pkg/helpers"
)

// ClothingModule wires the owner-scoped clothing CRUD behind bearer auth.
type ClothingModule struct {
	Handler *handlers.ClothingHandler
	JWT     *helpers.JWTManager
}

func NewClothingModule(h *handlers.ClothingHandler, jwt *helpers.JWTManager) *ClothingModule {
	return &ClothingModule{Handler: h, JWT: jwt}
}

func (m *ClothingModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/clothing")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
