package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewRouter builds the gin engine serving the dashboard page and the JSON API.
func NewRouter(handler *DashboardHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		respondWithError(c, http.StatusNotFound, "not found")
	})
	router.NoMethod(func(c *gin.Context) {
		respondWithError(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	handler.RegisterRoutes(router)

	return router
}
