// internal/middleware/middleware_test.go
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/javajoker/marketplace-backend/internal/i18n"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := i18n.Initialize("en"); err != nil {
		panic(err)
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, "en", parseLanguage(""))
	assert.Equal(t, "zh_TW", parseLanguage("zh-TW,zh;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", parseLanguage("en-GB"))
	assert.Equal(t, "en", parseLanguage("fr-FR,fr;q=0.9"))
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = bearerToken("")
	assert.False(t, ok)
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	handler := func(c *gin.Context) {
		userID, ok := utils.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "authenticated": ok})
	}
	r.GET("/required", AuthRequired(), handler)
	r.GET("/optional", OptionalAuth(), handler)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	token, err := utils.GenerateJWT(7, "potter", 1)
	assert.NoError(t, err)

	r := newAuthRouter()
	serve := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := serve("/required", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve("/required", "Bearer broken")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve("/required", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"authenticated":true}`, w.Body.String())

	w = serve("/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"authenticated":false}`, w.Body.String())

	w = serve("/optional", "Bearer broken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"authenticated":false}`, w.Body.String())

	w = serve("/optional", "Bearer "+token)
	assert.JSONEq(t, `{"user_id":7,"authenticated":true}`, w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := gin.New()
	r.Use(NewRateLimiter(ctx, rate.Limit(0.001), 2).Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}
