// Package form quản lý trạng thái form giao hàng: giá trị field, danh sách lựa chọn
// quận/phường suy ra từ tỉnh đã chọn, và lỗi validation theo field.
package form

import (
	"fmt"
	"strings"

	"github.com/shipping-form/app/models"
	"github.com/shipping-form/internal/geo"
)

// Mode thời điểm chạy validation
type Mode string

const (
	// ModeOnSubmit chỉ validate khi submit; field đã có lỗi được validate lại khi thay đổi
	ModeOnSubmit Mode = "submit"
	// ModeOnChange validate từng field ngay khi thay đổi
	ModeOnChange Mode = "change"
)

// ParseMode chuyển chuỗi cấu hình thành Mode, rỗng là ModeOnSubmit
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeOnSubmit, nil
	case ModeOnSubmit, ModeOnChange:
		return Mode(s), nil
	}
	return "", fmt.Errorf("form: unknown validation mode %q", s)
}

// State snapshot trạng thái form
type State struct {
	Values    models.FormValues `json:"values"`
	Districts []models.GeoUnit  `json:"districts"`
	Wards     []models.GeoUnit  `json:"wards"`
	Errors    FieldErrors       `json:"errors"`
}

// Form trạng thái một form giao hàng. Không an toàn khi dùng đồng thời.
type Form struct {
	cascader  geo.Cascader
	validator *Validator
	mode      Mode

	values    models.FormValues
	districts []models.GeoUnit
	wards     []models.GeoUnit
	errors    FieldErrors
}

// Option tùy chọn cho Form
type Option func(*Form)

// WithMode đặt thời điểm validate
func WithMode(m Mode) Option {
	return func(f *Form) { f.mode = m }
}

// New tạo form rỗng trên dataset đã nạp
func New(cascader geo.Cascader, v *Validator, opts ...Option) *Form {
	f := &Form{
		cascader:  cascader,
		validator: v,
		mode:      ModeOnSubmit,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset()
	return f
}

// Reset đưa form về trạng thái rỗng ban đầu
func (f *Form) Reset() {
	f.values = models.FormValues{}
	f.districts = []models.GeoUnit{}
	f.wards = []models.GeoUnit{}
	f.errors = FieldErrors{}
}

// Set gán giá trị một field (đã bỏ khoảng trắng hai đầu) và tính lại danh sách lựa chọn phụ thuộc.
// Đổi tỉnh xóa quận, phường đã chọn và danh sách phường cũ; chọn lại đúng tỉnh/quận cũ không đổi gì.
func (f *Form) Set(field, value string) error {
	old, ok := f.values.Get(field)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	value = strings.TrimSpace(value)
	f.values.Set(field, value)

	switch field {
	case models.FieldProvince:
		if value != old {
			f.districts = f.cascader.Districts(value)
			f.wards = f.cascader.Wards(value, "")
			f.values.District = ""
			f.values.Ward = ""
			delete(f.errors, models.FieldDistrict)
			delete(f.errors, models.FieldWard)
		}
	case models.FieldDistrict:
		if value != old {
			f.wards = f.cascader.Wards(f.values.Province, value)
			f.values.Ward = ""
			delete(f.errors, models.FieldWard)
		}
	}

	if f.mode == ModeOnChange || f.errors.Has(field) {
		f.validateField(field)
	}
	return nil
}

// Get giá trị hiện tại của field
func (f *Form) Get(field string) (string, error) {
	v, ok := f.values.Get(field)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return v, nil
}

// Values snapshot giá trị hiện tại
func (f *Form) Values() models.FormValues { return f.values }

// Provinces danh sách tỉnh của dataset
func (f *Form) Provinces() []models.GeoUnit { return f.cascader.Provinces() }

// Districts danh sách quận/huyện của tỉnh đang chọn
func (f *Form) Districts() []models.GeoUnit { return cloneUnits(f.districts) }

// Wards danh sách phường/xã của lựa chọn hiện tại
func (f *Form) Wards() []models.GeoUnit { return cloneUnits(f.wards) }

// Errors lỗi validation hiện tại
func (f *Form) Errors() FieldErrors { return f.errors.clone() }

// Validate chạy toàn bộ rule, lưu và trả về lỗi
func (f *Form) Validate() FieldErrors {
	f.errors = FieldErrors{}
	for _, field := range models.FieldNames {
		f.validateField(field)
	}
	return f.errors.clone()
}

// CheckField kiểm tra một giá trị ứng viên theo rule của field mà không đổi trạng thái.
// Quận, phường bắt buộc khi danh sách hiện tại khác rỗng.
func (f *Form) CheckField(field, value string) *FieldError {
	switch field {
	case models.FieldProvince:
		return f.validator.CheckOption(field, value, f.cascader.Provinces(), f.validator.Profile().ProvinceRequired)
	case models.FieldDistrict:
		return f.validator.CheckOption(field, value, f.districts, len(f.districts) > 0)
	case models.FieldWard:
		return f.validator.CheckOption(field, value, f.wards, len(f.wards) > 0)
	}
	return f.validator.Check(field, value)
}

// State snapshot trạng thái cho tầng hiển thị
func (f *Form) State() State {
	return State{
		Values:    f.values,
		Districts: f.Districts(),
		Wards:     f.Wards(),
		Errors:    f.Errors(),
	}
}

func (f *Form) validateField(field string) {
	value, _ := f.values.Get(field)
	if fe := f.CheckField(field, value); fe != nil {
		f.errors[field] = *fe
		return
	}
	delete(f.errors, field)
}

func cloneUnits(units []models.GeoUnit) []models.GeoUnit {
	out := make([]models.GeoUnit, len(units))
	copy(out, units)
	return out
}
