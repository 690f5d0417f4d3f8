package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "blogpost-api/internal/interface/http"
	"blogpost-api/internal/interface/middleware"
	"blogpost-api/pkg/helpers"
)

// BlogPostModule wires the post feed and the ownership-gated mutations.
// Reads take an optional bearer token: it only drives the per-viewer
// isOwner flag, never access.
type BlogPostModule struct {
	Handler *handlers.BlogPostHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewBlogPostModule(h *handlers.BlogPostHandler, jwt *helpers.JWTManager, rdb *redis.Client) *BlogPostModule {
	return &BlogPostModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *BlogPostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/blogposts")

	reads := posts.Group("")
	reads.Use(middleware.OptionalAuth(m.JWT))
	{
		reads.GET("", m.Handler.ListAll)
		reads.GET("/user/:userId", m.Handler.ListByUser)
		reads.GET("/:id", m.Handler.GetByID)
	}

	writes := posts.Group("")
	writes.Use(
		middleware.RequireAuth(m.JWT),
		middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		writes.POST("", m.Handler.Create)
		writes.PUT("/:id", m.Handler.Update)
		writes.DELETE("/:id", m.Handler.Delete)
	}
}
