package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP resolves the client address behind proxies and stores it under
// "real_ip" for the rate-limit keys. CF-Connecting-IP wins over the
// left-most X-Forwarded-For entry; anything unparseable falls back to
// gin's ClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ip := headerIP(c.GetHeader("CF-Connecting-IP")); ip != "" {
			c.Set("real_ip", ip)
			c.Next()
			return
		}
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := headerIP(first); ip != "" {
				c.Set("real_ip", ip)
				c.Next()
				return
			}
		}
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}

func headerIP(raw string) string {
	parsed := net.ParseIP(strings.TrimSpace(raw))
	if parsed == nil {
		return ""
	}
	return parsed.String()
}
