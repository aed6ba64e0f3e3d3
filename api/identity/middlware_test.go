package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubDecoder map[string]map[string]interface{}

func (s stubDecoder) Decode(token string) (map[string]interface{}, error) {
	claims, ok := s[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return claims, nil
}

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	decoder := stubDecoder{
		"scoped":   {"sub": "cli", "scope": "mazes:create"},
		"unscoped": {"sub": "cli"},
	}

	serve := func(scope, header string) (*httptest.ResponseRecorder, interface{}) {
		var seen interface{}
		router := gin.New()
		router.GET("/", Authoriz(decoder, scope), func(c *gin.Context) {
			seen, _ = c.Get(ContextClaims)
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w, seen
	}

	tests := []struct {
		name   string
		scope  string
		header string
		status int
	}{
		{"Missing header", "mazes:create", "", http.StatusUnauthorized},
		{"Not a bearer token", "mazes:create", "Basic scoped", http.StatusUnauthorized},
		{"Bearer without token", "mazes:create", "Bearer", http.StatusUnauthorized},
		{"Unknown token", "mazes:create", "Bearer forged", http.StatusUnauthorized},
		{"Wrong scope", "mazes:create", "Bearer unscoped", http.StatusForbidden},
		{"Matching scope", "mazes:create", "Bearer scoped", http.StatusNoContent},
		{"Lowercase scheme", "mazes:create", "bearer scoped", http.StatusNoContent},
		{"No scope required", "", "Bearer unscoped", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, seen := serve(tt.scope, tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusNoContent {
				assert.NotNil(t, seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}
