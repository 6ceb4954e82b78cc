package router

import (
	"github.com/oksasatya/geoauth/internal/application"
	"github.com/oksasatya/geoauth/internal/container"
	pginfra "github.com/oksasatya/geoauth/internal/infrastructure/postgres"
	"github.com/oksasatya/geoauth/internal/infrastructure/rediscache"
	handlers "github.com/oksasatya/geoauth/internal/interface/http"
	"github.com/oksasatya/geoauth/internal/router/modules"
)

// InitModules builds all application modules from the container singletons
// and registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	codes := rediscache.NewCodeStore(container.GetRedis())

	authSvc := application.NewAuthService(
		userRepo,
		codes,
		container.GetNotifier(),
		container.GetJWT(),
		logger,
		cfg.CodeTTL,
	)
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))

	geoSvc := application.NewGeoService(
		pginfra.NewCountryRepository(pool),
		pginfra.NewCityRepository(pool),
		container.GetRedis(),
		logger,
	)
	r.Add(modules.NewGeoModule(
		handlers.NewCountryHandler(geoSvc, logger),
		handlers.NewCityHandler(geoSvc, logger),
	))
}
