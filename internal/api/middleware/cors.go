package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMaxAge bounds how long browsers may cache the preflight response
const corsMaxAge = time.Hour

// SetupCORS permits cross-origin reads and writes from any origin. The
// public catalog and analytics endpoints are meant to be embeddable, so the
// policy is open; credentials stay disabled because auth rides in the
// Authorization header, never in cookies.
func SetupCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	})
}
