package router

import (
	"blogpost-api/internal/application"
	"blogpost-api/internal/container"
	pginfra "blogpost-api/internal/infrastructure/postgres"
	handlers "blogpost-api/internal/interface/http"
	"blogpost-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	postRepo := pginfra.NewBlogPostRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetLogger())
	postSvc := application.NewBlogPostService(postRepo, userRepo, container.GetLogger())

	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger())
	postHandler := handlers.NewBlogPostHandler(postSvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT(), container.GetRedis()))
	r.Add(modules.NewBlogPostModule(postHandler, container.GetJWT(), container.GetRedis()))
}
