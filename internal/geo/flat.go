package geo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shipping-form/app/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MatchPolicy cách gắn phường vào tỉnh trong dataset phẳng
type MatchPolicy string

const (
	// MatchCodeOrPath khớp theo mã cha hoặc đường dẫn chứa tên tỉnh
	MatchCodeOrPath MatchPolicy = "code_or_path"
	// MatchCodeOnly chỉ khớp theo mã cha; bản ghi thiếu mã cha bị bỏ qua
	MatchCodeOnly MatchPolicy = "code_only"
)

// ParseMatchPolicy chuyển chuỗi cấu hình thành MatchPolicy, rỗng là mặc định
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(s) {
	case "":
		return MatchCodeOrPath, nil
	case MatchCodeOrPath, MatchCodeOnly:
		return MatchPolicy(s), nil
	}
	return "", fmt.Errorf("geo: unknown match policy %q", s)
}

// FlatCascader chiến lược lọc + chuẩn hóa + khử trùng + sắp xếp cho dataset phẳng.
// Dataset phẳng không có cấp quận/huyện.
type FlatCascader struct {
	ds     *FlatDataset
	policy MatchPolicy
}

// NewFlatCascader tạo cascader từ dataset phẳng đã nạp
func NewFlatCascader(ds *FlatDataset, policy MatchPolicy) *FlatCascader {
	if policy == "" {
		policy = MatchCodeOrPath
	}
	return &FlatCascader{ds: ds, policy: policy}
}

// Shape implements Cascader
func (c *FlatCascader) Shape() Shape { return ShapeFlat }

// Provinces implements Cascader
func (c *FlatCascader) Provinces() []models.GeoUnit {
	out := make([]models.GeoUnit, len(c.ds.Provinces))
	copy(out, c.ds.Provinces)
	return out
}

// Districts implements Cascader, luôn rỗng
func (c *FlatCascader) Districts(string) []models.GeoUnit {
	return []models.GeoUnit{}
}

// Wards implements Cascader. Tham số district bị bỏ qua.
func (c *FlatCascader) Wards(province, _ string) []models.GeoUnit {
	if province == "" {
		return []models.GeoUnit{}
	}

	var provinceName string
	if p, ok := FindUnit(c.ds.Provinces, province); ok {
		provinceName = p.Name
	}

	seen := make(map[string]struct{})
	out := make([]models.GeoUnit, 0)
	for _, rec := range c.ds.Wards {
		if !c.matches(rec, province, provinceName) {
			continue
		}
		unit := normalizeWard(rec)
		if unit.Code == "" {
			continue
		}
		if _, dup := seen[unit.Code]; dup {
			continue
		}
		seen[unit.Code] = struct{}{}
		out = append(out, unit)
	}

	SortByName(out)
	return out
}

// matches kiểm tra phường thuộc tỉnh theo mã cha, hoặc theo đường dẫn nếu policy cho phép
func (c *FlatCascader) matches(rec models.RawRecord, provinceCode, provinceName string) bool {
	if FirstNonEmpty(rec, WardParentFields...) == provinceCode {
		return true
	}
	if c.policy != MatchCodeOrPath || provinceName == "" {
		return false
	}
	path := FirstNonEmpty(rec, WardPathFields...)
	return path != "" && strings.Contains(path, provinceName)
}

// SortByName sắp xếp ổn định theo tên với collation tiếng Việt.
// Collator không an toàn khi dùng đồng thời nên tạo mới mỗi lần.
func SortByName(units []models.GeoUnit) {
	col := collate.New(language.Vietnamese)
	sort.SliceStable(units, func(i, j int) bool {
		return col.CompareString(units[i].Name, units[j].Name) < 0
	})
}
