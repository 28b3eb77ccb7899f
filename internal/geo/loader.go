// Package geo nạp dữ liệu hành chính tĩnh và suy ra danh sách lựa chọn phụ thuộc
// (tỉnh → quận/huyện → phường/xã) cho form giao hàng.
package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shipping-form/app/models"
)

// ErrEmptyDataset dataset không có bản ghi nào
var ErrEmptyDataset = errors.New("geo: empty dataset")

// FlatDataset dataset dạng phẳng: danh sách tỉnh + danh sách phường độc lập
type FlatDataset struct {
	Provinces []models.GeoUnit
	Wards     []models.RawRecord
}

// LoadNested đọc dataset dạng cây province → districts → wards
func LoadNested(r io.Reader) ([]models.NestedProvince, error) {
	var provinces []models.NestedProvince
	if err := json.NewDecoder(r).Decode(&provinces); err != nil {
		return nil, fmt.Errorf("lỗi decode nested dataset: %w", err)
	}
	if len(provinces) == 0 {
		return nil, ErrEmptyDataset
	}
	return provinces, nil
}

// LoadNestedFile đọc dataset dạng cây từ file JSON
func LoadNestedFile(path string) ([]models.NestedProvince, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadNested(f)
}

// LoadFlat đọc dataset dạng phẳng. Tỉnh được chuẩn hóa ngay, phường giữ nguyên
// dạng thô để cascader lọc theo tỉnh được chọn.
func LoadFlat(provinces, wards io.Reader) (*FlatDataset, error) {
	rawProvinces, err := decodeRecords(provinces)
	if err != nil {
		return nil, fmt.Errorf("lỗi decode danh sách tỉnh: %w", err)
	}
	if len(rawProvinces) == 0 {
		return nil, ErrEmptyDataset
	}
	rawWards, err := decodeRecords(wards)
	if err != nil {
		return nil, fmt.Errorf("lỗi decode danh sách phường: %w", err)
	}

	ds := &FlatDataset{
		Provinces: make([]models.GeoUnit, 0, len(rawProvinces)),
		Wards:     rawWards,
	}
	for _, rec := range rawProvinces {
		ds.Provinces = append(ds.Provinces, normalizeProvince(rec))
	}
	return ds, nil
}

// LoadFlatFiles đọc dataset dạng phẳng từ hai file JSON
func LoadFlatFiles(provincesPath, wardsPath string) (*FlatDataset, error) {
	p, err := os.Open(provincesPath)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	w, err := os.Open(wardsPath)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	return LoadFlat(p, w)
}

// decodeRecords chấp nhận mảng bản ghi hoặc object keyed theo mã.
// Với object, bản ghi không có "code" nhận key làm mã và kết quả được sắp theo key,
// nên khi khử trùng "bản ghi đầu tiên" là bản ghi có key nhỏ nhất, không phải thứ tự trong file.
func decodeRecords(r io.Reader) ([]models.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if data[0] == '[' {
		var list []models.RawRecord
		if err := dec.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var keyed map[string]models.RawRecord
	if err := dec.Decode(&keyed); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]models.RawRecord, 0, len(keyed))
	for _, k := range keys {
		rec := keyed[k]
		if rec == nil {
			rec = models.RawRecord{}
		}
		if rec.Field("code") == "" {
			rec["code"] = k
		}
		list = append(list, rec)
	}
	return list, nil
}
