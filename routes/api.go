package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shipping-form/app/controllers"
)

// SetupAPIRoutes thiết lập tất cả API routes
func SetupAPIRoutes(router *gin.Engine, formController *controllers.FormController, geoController *controllers.GeoController) {
	v1 := router.Group("/v1")
	{
		// Danh sách lựa chọn hành chính
		geo := v1.Group("/geo")
		{
			geo.GET("/provinces", geoController.Provinces)
			geo.GET("/provinces/:province/districts", geoController.Districts)
			geo.GET("/provinces/:province/wards", geoController.Wards)
		}

		// Phiên form
		forms := v1.Group("/forms")
		{
			forms.POST("", formController.Create)
			forms.GET("/:formID", formController.Get)
			forms.PATCH("/:formID/fields", formController.SetField)
			forms.POST("/:formID/reset", formController.Reset)
			forms.POST("/:formID/submit", formController.Submit)
			forms.DELETE("/:formID", formController.Delete)
		}

		v1.POST("/submissions", formController.SubmitOnce)
		v1.GET("/health", formController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes
func SetupHealthRoutes(router *gin.Engine, formController *controllers.FormController) {
	router.GET("/health", formController.HealthCheck)
}
