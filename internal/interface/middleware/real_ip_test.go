package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare header", map[string]string{"CF-Connecting-IP": "203.0.113.7"}, "203.0.113.7"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.1"}, "198.51.100.4"},
		{"cloudflare wins", map[string]string{
			"CF-Connecting-IP": "203.0.113.7",
			"X-Forwarded-For":  "198.51.100.4",
		}, "203.0.113.7"},
		{"garbage headers fall back", map[string]string{"X-Forwarded-For": "not-an-ip"}, ""},
	}
	for _, tc := range cases {
		var got string
		r := gin.New()
		r.GET("/", RealIP(), func(c *gin.Context) {
			got = c.GetString("real_ip")
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		r.ServeHTTP(httptest.NewRecorder(), req)

		if tc.want != "" && got != tc.want {
			t.Errorf("%s: real_ip = %q, want %q", tc.name, got, tc.want)
		}
		if tc.want == "" && got == "" {
			t.Errorf("%s: real_ip empty, want ClientIP fallback", tc.name)
		}
	}
}
