package geo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shipping-form/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNested(t *testing.T) {
	provinces, err := LoadNested(strings.NewReader(nestedJSON))
	require.NoError(t, err)
	require.Len(t, provinces, 3)
	assert.Equal(t, "Thành phố Hà Nội", provinces[0].Name)
	assert.Equal(t, []string{"Phường Phúc Xá", "Phường Trúc Bạch"}, provinces[0].Districts[0].Wards)
}

func TestLoadNested_Errors(t *testing.T) {
	_, err := LoadNested(strings.NewReader(`{not json`))
	assert.Error(t, err)

	_, err = LoadNested(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLoadFlat_ProvinceNameFallback(t *testing.T) {
	ds, err := LoadFlat(strings.NewReader(flatProvincesJSON), strings.NewReader(flatWardsJSON))
	require.NoError(t, err)

	want := []models.GeoUnit{
		{Code: "79", Name: "Thành phố Hồ Chí Minh"},
		{Code: "1", Name: "Thành phố Hà Nội"},
		{Code: "02", Name: "ha-giang"},
		{Code: "04", Name: "04"},
	}
	if diff := cmp.Diff(want, ds.Provinces); diff != "" {
		t.Fatalf("provinces mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, ds.Wards, 8)
}

func TestLoadFlat_KeyedObject(t *testing.T) {
	provinces := `{
	  "79": {"name": "Hồ Chí Minh", "name_with_type": "Thành phố Hồ Chí Minh"},
	  "01": {"name": "Hà Nội"}
	}`
	wards := `{
	  "26734": {"name_with_type": "Phường Bến Nghé", "parent_code": "79"}
	}`
	ds, err := LoadFlat(strings.NewReader(provinces), strings.NewReader(wards))
	require.NoError(t, err)

	assert.Equal(t, []models.GeoUnit{
		{Code: "01", Name: "Hà Nội"},
		{Code: "79", Name: "Hồ Chí Minh"},
	}, ds.Provinces)
	require.Len(t, ds.Wards, 1)
	assert.Equal(t, "26734", ds.Wards[0].Field("code"))
}

func TestLoadFlat_KeyedObjectDedupeFollowsKeyOrder(t *testing.T) {
	wards := `{
  "w2": {"code": "26734", "name_with_type": "Phường Bến Nghé (cũ)", "parent_code": "79"},
  "w1": {"code": "26734", "name_with_type": "Phường Bến Nghé", "parent_code": "79"}
}`
	ds, err := LoadFlat(strings.NewReader(`[{"code": "79", "name": "Thành phố Hồ Chí Minh"}]`), strings.NewReader(wards))
	require.NoError(t, err)

	got := NewFlatCascader(ds, MatchCodeOrPath).Wards("79", "")
	assert.Equal(t, []string{"Phường Bến Nghé"}, names(got))
}

func TestLoadFlat_EmptyWardsAllowed(t *testing.T) {
	ds, err := LoadFlat(strings.NewReader(`[{"code":"01"}]`), strings.NewReader(``))
	require.NoError(t, err)
	assert.Empty(t, ds.Wards)

	_, err = LoadFlat(strings.NewReader(`[]`), strings.NewReader(`[]`))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	nestedPath := filepath.Join(dir, "provinces.json")
	provincesPath := filepath.Join(dir, "flat_provinces.json")
	wardsPath := filepath.Join(dir, "flat_wards.json")
	require.NoError(t, os.WriteFile(nestedPath, []byte(nestedJSON), 0o644))
	require.NoError(t, os.WriteFile(provincesPath, []byte(flatProvincesJSON), 0o644))
	require.NoError(t, os.WriteFile(wardsPath, []byte(flatWardsJSON), 0o644))

	nested, err := LoadNestedFile(nestedPath)
	require.NoError(t, err)
	assert.Len(t, nested, 3)

	flat, err := LoadFlatFiles(provincesPath, wardsPath)
	require.NoError(t, err)
	assert.Len(t, flat.Provinces, 4)

	_, err = LoadNestedFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	rec := models.RawRecord{"code": "", "ward_code": "  ", "id": float64(26743), "name": nil}
	assert.Equal(t, "26743", FirstNonEmpty(rec, WardCodeFields...))
	assert.Equal(t, "", FirstNonEmpty(rec, "name", "slug"))
	assert.Equal(t, "", FirstNonEmpty(rec))
}
