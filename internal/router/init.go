package router

import (
	"github.com/veridoc/kyc-portal/internal/application"
	"github.com/veridoc/kyc-portal/internal/container"
	pginfra "github.com/veridoc/kyc-portal/internal/infrastructure/postgres"
	handlers "github.com/veridoc/kyc-portal/internal/interface/http"
	"github.com/veridoc/kyc-portal/internal/router/modules"
)

// InitModules initializes all application modules and registers them
// with the router registry. Called once during startup, after the
// container has been populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	kycs := pginfra.NewKycRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)
	kycSvc := application.NewKycService(kycs, users, container.GetBlobStore(),
		container.GetRedis(), container.GetRabbitPub(), logger, cfg.AppName)
	reviewSvc := application.NewReviewService(kycs, users,
		container.GetRedis(), container.GetRabbitPub(), logger, cfg.AppName)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewKycModule(handlers.NewKycHandler(kycSvc, logger), container.GetJWT()))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(reviewSvc, logger), container.GetJWT()))
	r.Add(modules.NewHealthModule(pool))
}
