package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hppyapp/hppy-backend/internal/container"
	handlers "github.com/hppyapp/hppy-backend/internal/interface/http"
	"github.com/hppyapp/hppy-backend/internal/interface/middleware"
	"github.com/hppyapp/hppy-backend/pkg/helpers"
)

// ActivityModule wires the activity ledger endpoints, all protected:
// POST/GET /api/activities, PATCH/DELETE /api/activities/:id

type ActivityModule struct {
	Handler *handlers.ActivityHandler
	JWT     *helpers.JWTManager
}

func NewActivityModule(h *handlers.ActivityHandler, jwt *helpers.JWTManager) *ActivityModule {
	return &ActivityModule{Handler: h, JWT: jwt}
}

func (m *ActivityModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/activities", m.Handler.Create)
		auth.GET("/activities", m.Handler.List)
		auth.PATCH("/activities/:id", m.Handler.Update)
		auth.DELETE("/activities/:id", m.Handler.Delete)
	}
}
