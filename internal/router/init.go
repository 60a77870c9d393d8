package router

import (
	"github.com/hppyapp/hppy-backend/internal/application"
	"github.com/hppyapp/hppy-backend/internal/container"
	pginfra "github.com/hppyapp/hppy-backend/internal/infrastructure/postgres"
	handlers "github.com/hppyapp/hppy-backend/internal/interface/http"
	"github.com/hppyapp/hppy-backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	activities := pginfra.NewActivityRepository(pool)
	recommended := pginfra.NewRecommendedRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	activitySvc := application.NewActivityService(activities, cfg.ActivityRewardCoins, logger)
	economySvc := application.NewEconomyService(users, logger)
	recommendedSvc := application.NewRecommendedService(recommended)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewActivityModule(handlers.NewActivityHandler(activitySvc, logger), jwt))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(economySvc, recommendedSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
