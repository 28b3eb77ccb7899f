package geo

import (
	"fmt"

	"github.com/shipping-form/app/models"
)

// Shape hình dạng dataset đang dùng
type Shape string

const (
	ShapeNested Shape = "nested"
	ShapeFlat   Shape = "flat"
)

// ParseShape chuyển chuỗi cấu hình thành Shape
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeNested, ShapeFlat:
		return Shape(s), nil
	}
	return "", fmt.Errorf("geo: unknown dataset shape %q", s)
}

// Cascader suy ra danh sách lựa chọn con từ lựa chọn cha.
// Mọi method đều là hàm thuần của tham số và dataset bất biến; kết quả không cache.
type Cascader interface {
	// Shape dạng dataset phía sau
	Shape() Shape
	// Provinces danh sách tỉnh/thành
	Provinces() []models.GeoUnit
	// Districts quận/huyện của tỉnh, rỗng nếu không có cấp quận
	Districts(province string) []models.GeoUnit
	// Wards phường/xã của tỉnh (và quận nếu dataset có cấp quận)
	Wards(province, district string) []models.GeoUnit
}

// FindUnit tìm đơn vị theo mã trong danh sách
func FindUnit(units []models.GeoUnit, code string) (models.GeoUnit, bool) {
	for _, u := range units {
		if u.Code == code {
			return u, true
		}
	}
	return models.GeoUnit{}, false
}
