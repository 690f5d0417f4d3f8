package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "blogpost-api/internal/interface/http"
	"blogpost-api/internal/interface/middleware"
	"blogpost-api/pkg/helpers"
)

// AuthModule wires identity routes.
// Public: POST /auth/register, POST /auth/login, GET /auth/user/:id
// Protected: GET /auth/profile, PUT /auth/profile
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints carry a per-IP limiter; private addresses are
	// exempt so local development stays unthrottled.
	credLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	auth := rg.Group("/auth")
	auth.POST("/register", credLimiter, m.Handler.Register)
	auth.POST("/login", credLimiter, m.Handler.Login)
	auth.GET("/user/:id", m.Handler.GetUser)

	protected := auth.Group("")
	protected.Use(middleware.RequireAuth(m.JWT))
	{
		protected.GET("/profile", m.Handler.GetProfile)
		protected.PUT("/profile", m.Handler.UpdateProfile)
	}
}
