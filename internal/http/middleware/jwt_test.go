package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTMiddleware(secret))
	r.GET("/whoami", func(c *gin.Context) {
		sub, _ := Subject(c)
		c.String(http.StatusOK, sub)
	})
	return r
}

func TestJWTMiddleware(t *testing.T) {
	good, err := GenerateJWT("editor@example.com", "s3cret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT("editor@example.com", "s3cret", -time.Hour)
	require.NoError(t, err)
	foreign, err := GenerateJWT("editor@example.com", "other", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + good, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + good, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"garbage", "Bearer not.a.token", http.StatusUnauthorized},
	}

	r := newRouter("s3cret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "editor@example.com", w.Body.String())
			}
		})
	}
}
