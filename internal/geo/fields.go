package geo

import (
	"strings"

	"github.com/shipping-form/app/models"
)

// Chuỗi fallback cho các field không đồng nhất của dataset phẳng.
// Đánh giá từ trái sang phải, giá trị khác rỗng đầu tiên được chọn.
var (
	ProvinceNameFields = []string{"name", "name_with_type", "slug"}
	ProvinceCodeFields = []string{"code"}
	WardCodeFields     = []string{"code", "ward_code", "id"}
	WardNameFields     = []string{"name_with_type", "name", "ward_name", "path_with_type", "path"}
	WardParentFields   = []string{"parent_code", "province_code"}
	WardPathFields     = []string{"path_with_type", "path"}
)

// FirstNonEmpty trả về giá trị khác rỗng đầu tiên theo thứ tự keys
func FirstNonEmpty(rec models.RawRecord, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(rec.Field(key)); v != "" {
			return v
		}
	}
	return ""
}

// normalizeProvince chuyển bản ghi tỉnh thô về GeoUnit, tên fallback về mã
func normalizeProvince(rec models.RawRecord) models.GeoUnit {
	code := FirstNonEmpty(rec, ProvinceCodeFields...)
	name := FirstNonEmpty(rec, ProvinceNameFields...)
	if name == "" {
		name = code
	}
	return models.GeoUnit{Code: code, Name: name}
}

// normalizeWard chuyển bản ghi phường thô về GeoUnit, tên fallback về mã
func normalizeWard(rec models.RawRecord) models.GeoUnit {
	code := FirstNonEmpty(rec, WardCodeFields...)
	name := FirstNonEmpty(rec, WardNameFields...)
	if name == "" {
		name = code
	}
	return models.GeoUnit{Code: code, Name: name}
}
