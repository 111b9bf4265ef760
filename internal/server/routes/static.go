package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetupStaticRoutes serves the site's pages for every path no API route claims
func SetupStaticRoutes(router *gin.Engine, dir string) {
	fileServer := http.FileServer(http.Dir(dir))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
