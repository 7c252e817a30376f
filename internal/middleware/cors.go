package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	allowMethods = []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"}
	allowHeaders = []string{"Content-Type", "Authorization"}
)

// CORS allows any origin. The allow-headers and allow-methods lists go on
// every response, not only on preflights, because the front-end checks them
// on plain requests too.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    allowMethods,
		AllowHeaders:    allowHeaders,
	})
	methods := strings.Join(allowMethods, ",")
	headers := strings.Join(allowHeaders, ",")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", headers)
		handler(c)
	}
}
