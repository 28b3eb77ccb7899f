package geo

import "github.com/shipping-form/app/models"

// NestedCascader chiến lược duyệt cây cho dataset dạng province → districts → wards.
// Tỉnh, quận và phường đều được định danh bằng tên (mã = tên).
type NestedCascader struct {
	provinces []models.NestedProvince
}

// NewNestedCascader tạo cascader từ dataset dạng cây đã nạp
func NewNestedCascader(provinces []models.NestedProvince) *NestedCascader {
	return &NestedCascader{provinces: provinces}
}

// Shape implements Cascader
func (c *NestedCascader) Shape() Shape { return ShapeNested }

// Provinces implements Cascader
func (c *NestedCascader) Provinces() []models.GeoUnit {
	out := make([]models.GeoUnit, 0, len(c.provinces))
	for _, p := range c.provinces {
		out = append(out, models.GeoUnit{Code: p.Name, Name: p.Name})
	}
	return out
}

// Districts implements Cascader. So khớp tên chính xác, không tìm thấy trả về rỗng.
func (c *NestedCascader) Districts(province string) []models.GeoUnit {
	p := c.findProvince(province)
	if p == nil {
		return []models.GeoUnit{}
	}
	out := make([]models.GeoUnit, 0, len(p.Districts))
	for _, d := range p.Districts {
		out = append(out, models.GeoUnit{Code: d.Name, Name: d.Name})
	}
	return out
}

// Wards implements Cascader. Quận được tìm trong danh sách quận của tỉnh đã chọn.
func (c *NestedCascader) Wards(province, district string) []models.GeoUnit {
	p := c.findProvince(province)
	if p == nil || district == "" {
		return []models.GeoUnit{}
	}
	for _, d := range p.Districts {
		if d.Name != district {
			continue
		}
		out := make([]models.GeoUnit, 0, len(d.Wards))
		for _, w := range d.Wards {
			out = append(out, models.GeoUnit{Code: w, Name: w})
		}
		return out
	}
	return []models.GeoUnit{}
}

func (c *NestedCascader) findProvince(name string) *models.NestedProvince {
	if name == "" {
		return nil
	}
	for i := range c.provinces {
		if c.provinces[i].Name == name {
			return &c.provinces[i]
		}
	}
	return nil
}
