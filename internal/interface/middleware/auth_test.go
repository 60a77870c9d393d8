package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hppyapp/hppy-backend/pkg/helpers"
)

func authTestRouter(jwt *helpers.JWTManager) (*gin.Engine, *int64) {
	gin.SetMode(gin.TestMode)
	var seen int64
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		seen = UserID(c)
		c.Status(http.StatusNoContent)
	})
	return r, &seen
}

func TestAuthMiddleware(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, seen := authTestRouter(jwt)

	token, _, err := jwt.Generate(42, "5550100000")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + token, http.StatusNoContent},
		{"lowercase scheme", "bearer " + token, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"no scheme", token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}
	for _, c := range cases {
		*seen = 0
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != c.status {
			t.Errorf("%s: status = %d, want %d", c.name, w.Code, c.status)
		}
		if c.status == http.StatusNoContent && *seen != 42 {
			t.Errorf("%s: UserID = %d, want 42", c.name, *seen)
		}
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	token, _, err := expired.Generate(42, "5550100000")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, _ := authTestRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token status = %d, want 401", w.Code)
	}
}

func TestUserIDOutsideAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if id := UserID(c); id != 0 {
		t.Errorf("UserID without auth = %d, want 0", id)
	}
}
