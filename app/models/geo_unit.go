package models

import (
	"fmt"
	"strconv"
)

// GeoUnit đại diện cho một đơn vị hành chính đã chuẩn hóa (tỉnh, quận, phường)
type GeoUnit struct {
	Code string `json:"code"` // Mã đơn vị, duy nhất trong cùng cấp cha
	Name string `json:"name"` // Tên hiển thị
}

// String trả về tên hiển thị, fallback về mã nếu tên rỗng
func (u GeoUnit) String() string {
	if u.Name == "" {
		return u.Code
	}
	return u.Name
}

// Level cấp hành chính
type Level int

// Level constants
const (
	LevelProvince Level = 2
	LevelDistrict Level = 3
	LevelWard     Level = 4
)

// String trả về tên cấp hành chính
func (l Level) String() string {
	switch l {
	case LevelProvince:
		return "province"
	case LevelDistrict:
		return "district"
	case LevelWard:
		return "ward"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// NestedProvince tỉnh trong dataset dạng cây (province → district → ward)
type NestedProvince struct {
	Name      string           `json:"name"`
	Districts []NestedDistrict `json:"districts"`
}

// NestedDistrict quận/huyện trong dataset dạng cây, phường chỉ là chuỗi hiển thị
type NestedDistrict struct {
	Name  string   `json:"name"`
	Wards []string `json:"wards"`
}

// RawRecord một bản ghi tỉnh hoặc phường trong dataset dạng phẳng.
// Tên field không đồng nhất giữa các nguồn nên giữ nguyên dạng map.
type RawRecord map[string]any

// Field lấy giá trị của một field dưới dạng chuỗi, rỗng nếu không có
func (r RawRecord) Field(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
		return "true"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
