package models

import "time"

// Tên các field của form giao hàng
const (
	FieldFullname     = "fullname"
	FieldDOB          = "dob"
	FieldCCCD         = "cccd"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldStreetNumber = "streetNumber"
	FieldStreetName   = "streetName"
	FieldProvince     = "province"
	FieldDistrict     = "district"
	FieldWard         = "ward"
)

// FieldNames thứ tự field khi hiển thị và khi replay giá trị.
// Province → district → ward đứng trước để cascade không xóa giá trị đã set.
var FieldNames = []string{
	FieldFullname,
	FieldDOB,
	FieldCCCD,
	FieldPhone,
	FieldEmail,
	FieldStreetNumber,
	FieldStreetName,
	FieldProvince,
	FieldDistrict,
	FieldWard,
}

// FormValues giá trị của form giao hàng
type FormValues struct {
	Fullname     string `json:"fullname"`     // Họ và tên
	DOB          string `json:"dob"`          // Ngày sinh
	CCCD         string `json:"cccd"`         // Số căn cước công dân
	Phone        string `json:"phone"`        // Số điện thoại
	Email        string `json:"email"`        // Email
	StreetNumber string `json:"streetNumber"` // Số nhà
	StreetName   string `json:"streetName"`   // Tên đường
	Province     string `json:"province"`     // Tỉnh/thành phố
	District     string `json:"district"`     // Quận/huyện
	Ward         string `json:"ward"`         // Phường/xã
}

// Get lấy giá trị theo tên field
func (v *FormValues) Get(field string) (string, bool) {
	p := v.ptr(field)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set gán giá trị theo tên field, trả về false nếu field không tồn tại
func (v *FormValues) Set(field, value string) bool {
	p := v.ptr(field)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (v *FormValues) ptr(field string) *string {
	switch field {
	case FieldFullname:
		return &v.Fullname
	case FieldDOB:
		return &v.DOB
	case FieldCCCD:
		return &v.CCCD
	case FieldPhone:
		return &v.Phone
	case FieldEmail:
		return &v.Email
	case FieldStreetNumber:
		return &v.StreetNumber
	case FieldStreetName:
		return &v.StreetName
	case FieldProvince:
		return &v.Province
	case FieldDistrict:
		return &v.District
	case FieldWard:
		return &v.Ward
	}
	return nil
}

// Receipt xác nhận đã nhận form hợp lệ
type Receipt struct {
	ID          string     `json:"id"`
	Message     string     `json:"message"`
	Values      FormValues `json:"values"`
	SubmittedAt time.Time  `json:"submitted_at"`
}
