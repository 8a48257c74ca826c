package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// newRateLimitedRouter builds a router that injects the user and applies the rate limiter.
func newRateLimitedRouter(user *authDomain.User, rps float64, burst int) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		ctx := WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	router.Use(RateLimitMiddleware(rps, burst, createTestLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	user := &authDomain.User{
		Email: "bob.johnson@slalom.com",
		Role:  authDomain.ConsultantRole,
	}

	// Generous limits
	router := newRateLimitedRouter(user, 10.0, 20)

	// Send requests within limit
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_BlocksRequestsExceedingLimit(t *testing.T) {
	user := &authDomain.User{
		Email: "bob.johnson@slalom.com",
		Role:  authDomain.ConsultantRole,
	}

	// Very low limits
	router := newRateLimitedRouter(user, 1.0, 2)

	// Send requests up to burst capacity (should succeed)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Next request should be rate limited
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitMiddleware_IndependentLimitsPerUser(t *testing.T) {
	bob := &authDomain.User{Email: "bob.johnson@slalom.com", Role: authDomain.ConsultantRole}
	emma := &authDomain.User{Email: "emma.davis@slalom.com", Role: authDomain.ConsultantRole}

	// Shared middleware so both users hit the same limiter store
	middleware := RateLimitMiddleware(1.0, 1, createTestLogger())

	newRouter := func(user *authDomain.User) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			ctx := WithUser(c.Request.Context(), user)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
		router.Use(middleware)
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		return router
	}

	bobRouter := newRouter(bob)
	emmaRouter := newRouter(emma)

	// Exhaust bob's budget
	w := httptest.NewRecorder()
	bobRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	bobRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Emma is unaffected
	w = httptest.NewRecorder()
	emmaRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_Error_NoUser(t *testing.T) {
	// No user injection middleware
	router := gin.New()
	router.Use(RateLimitMiddleware(10.0, 20, createTestLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
