package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hppyapp/hppy-backend/internal/container"
	handlers "github.com/hppyapp/hppy-backend/internal/interface/http"
	"github.com/hppyapp/hppy-backend/internal/interface/middleware"
	"github.com/hppyapp/hppy-backend/pkg/helpers"
)

// UserModule wires the user-economy endpoints, all protected:
// GET/PATCH /api/user/settings, POST /api/user/purchase,
// GET/POST /api/user/recommended-activities

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/user/settings", m.Handler.GetSettings)
		auth.PATCH("/user/settings", m.Handler.UpdateSettings)
		auth.POST("/user/purchase", m.Handler.Purchase)
		auth.GET("/user/recommended-activities", m.Handler.GetRecommended)
		auth.POST("/user/recommended-activities", m.Handler.SaveRecommended)
	}
}
