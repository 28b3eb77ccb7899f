package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shipping-form/app/models"
	"github.com/shipping-form/app/responses"
	"github.com/shipping-form/app/services"
)

// GeoController controller trả về danh sách lựa chọn tỉnh/quận/phường
type GeoController struct {
	formService *services.FormService
}

// NewGeoController tạo mới GeoController
func NewGeoController(formService *services.FormService) *GeoController {
	return &GeoController{formService: formService}
}

// Provinces danh sách tỉnh/thành
func (gc *GeoController) Provinces(c *gin.Context) {
	items := gc.formService.Provinces()
	c.JSON(http.StatusOK, responses.GeoListResponse{
		Level: models.LevelProvince.String(),
		Items: items,
		Total: len(items),
	})
}

// Districts danh sách quận/huyện của tỉnh; tỉnh không tồn tại trả về danh sách rỗng
func (gc *GeoController) Districts(c *gin.Context) {
	province := c.Param("province")
	items := gc.formService.Districts(province)
	c.JSON(http.StatusOK, responses.GeoListResponse{
		Level:  models.LevelDistrict.String(),
		Parent: province,
		Items:  items,
		Total:  len(items),
	})
}

// Wards danh sách phường/xã của tỉnh, query district dùng cho dataset dạng cây
func (gc *GeoController) Wards(c *gin.Context) {
	province := c.Param("province")
	items := gc.formService.Wards(province, c.Query("district"))
	c.JSON(http.StatusOK, responses.GeoListResponse{
		Level:  models.LevelWard.String(),
		Parent: province,
		Items:  items,
		Total:  len(items),
	})
}
