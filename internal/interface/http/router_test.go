package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "blogpost-api/internal/interface/http"
	"blogpost-api/internal/router"
	"blogpost-api/internal/router/modules"
	"blogpost-api/pkg/helpers"
	"blogpost-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

// fixture runs the real router and middleware chain over mocked services.
// Redis is absent, so the rate limiters are passthrough.
type fixture struct {
	engine *gin.Engine
	jwt    *helpers.JWTManager
	auth   *mockAuthService
	posts  *mockBlogPostService
}

func newFixture() *fixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("handler-test-secret", time.Hour)
	auth := &mockAuthService{}
	posts := &mockBlogPostService{}

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(auth, logger), jwt, nil))
	reg.Add(modules.NewBlogPostModule(handlers.NewBlogPostHandler(posts, logger), jwt, nil))
	reg.RegisterAll()

	return &fixture{engine: engine, jwt: jwt, auth: auth, posts: posts}
}

func (f *fixture) token(t *testing.T, userID int64) string {
	t.Helper()
	tok, err := f.jwt.Generate(userID, "user", "user@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func ptr(v int64) *int64 { return &v }
