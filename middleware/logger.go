package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// slowThreshold flags requests worth a second look; bulk imports routinely
// cross it, which is exactly the point.
const slowThreshold = 3 * time.Second

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()

		if latency > slowThreshold {
			log.Printf("🐢 %s %s %s %d %s", method, path, clientIP, status, latency)
			return
		}
		log.Printf("%s %s %s %d %s", method, path, clientIP, status, latency)
	}
}
