package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shipping-form/app/controllers"
)

// SetupWebRoutes thiết lập web routes
func SetupWebRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shipping Form Service",
			"version": controllers.Version,
			"endpoints": map[string]string{
				"provinces":  "GET /v1/geo/provinces",
				"districts":  "GET /v1/geo/provinces/:province/districts",
				"wards":      "GET /v1/geo/provinces/:province/wards?district=",
				"create":     "POST /v1/forms",
				"set_field":  "PATCH /v1/forms/:formID/fields",
				"submit":     "POST /v1/forms/:formID/submit",
				"submission": "POST /v1/submissions",
				"health":     "GET /health",
			},
		})
	})
}
