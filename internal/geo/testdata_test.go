package geo

import (
	"strings"
	"testing"

	"github.com/shipping-form/app/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const nestedJSON = `[
  {"name": "Thành phố Hà Nội", "districts": [
    {"name": "Quận Ba Đình", "wards": ["Phường Phúc Xá", "Phường Trúc Bạch"]},
    {"name": "Quận Hoàn Kiếm", "wards": ["Phường Hàng Bạc"]}
  ]},
  {"name": "Tỉnh Hà Giang", "districts": [
    {"name": "Thành phố Hà Giang", "wards": []}
  ]},
  {"name": "Tỉnh Cao Bằng", "districts": []}
]`

const flatProvincesJSON = `[
  {"code": "79", "name": "Thành phố Hồ Chí Minh", "slug": "ho-chi-minh"},
  {"code": 1, "name_with_type": "Thành phố Hà Nội"},
  {"code": "02", "slug": "ha-giang"},
  {"code": "04"}
]`

const flatWardsJSON = `[
  {"code": "26734", "name_with_type": "Phường Bến Nghé", "parent_code": "79"},
  {"code": "26737", "name": "Đa Kao", "province_code": "79"},
  {"ward_code": "26740", "ward_name": "Phường Cầu Kho", "path_with_type": "Phường Cầu Kho, Quận 1, Thành phố Hồ Chí Minh"},
  {"id": 26743, "path": "Phường An Khánh, Thành phố Hồ Chí Minh"},
  {"code": "26734", "name_with_type": "Phường Bến Nghé (trùng)", "parent_code": "79"},
  {"code": "", "name": "Không mã", "parent_code": "79"},
  {"code": "00001", "name_with_type": "Phường Phúc Xá", "parent_code": "1"},
  {"code": "00004", "name_with_type": "Phường Trúc Bạch", "path_with_type": "Phường Trúc Bạch, Quận Ba Đình, Thành phố Hà Nội"}
]`

func newNestedFixture(t *testing.T) *NestedCascader {
	t.Helper()
	provinces, err := LoadNested(strings.NewReader(nestedJSON))
	require.NoError(t, err)
	return NewNestedCascader(provinces)
}

func newFlatFixture(t *testing.T, policy MatchPolicy) *FlatCascader {
	t.Helper()
	ds, err := LoadFlat(strings.NewReader(flatProvincesJSON), strings.NewReader(flatWardsJSON))
	require.NoError(t, err)
	return NewFlatCascader(ds, policy)
}

func names(units []models.GeoUnit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.Name)
	}
	return out
}

func codes(units []models.GeoUnit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.Code)
	}
	return out
}

func compareNames(a, b string) int {
	return collate.New(language.Vietnamese).CompareString(a, b)
}
