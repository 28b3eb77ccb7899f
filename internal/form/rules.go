package form

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shipping-form/app/models"
	"github.com/shipping-form/internal/geo"
)

// DOBFormat định dạng ngày sinh được chấp nhận
type DOBFormat string

const (
	// DOBISO yyyy-mm-dd, giá trị mà input date gửi lên
	DOBISO DOBFormat = "iso"
	// DOBDMY dd/mm/yyyy nhập tay
	DOBDMY DOBFormat = "dmy"
)

// MinBirthYear năm sinh nhỏ nhất hợp lệ
const MinBirthYear = 1900

var (
	rePhone = regexp.MustCompile(`^0\d{9}$`)
	reEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	reCCCD  = regexp.MustCompile(`^\d{12}$`)
	reDMY   = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// Profile tập rule phụ thuộc dạng dataset
type Profile struct {
	DOBFormat        DOBFormat
	ProvinceRequired bool
}

// ProfileFor profile mặc định: dataset cây dùng input date và tỉnh không bắt buộc,
// dataset phẳng dùng dd/mm/yyyy và bắt buộc chọn tỉnh.
func ProfileFor(shape geo.Shape) Profile {
	if shape == geo.ShapeFlat {
		return Profile{DOBFormat: DOBDMY, ProvinceRequired: true}
	}
	return Profile{DOBFormat: DOBISO, ProvinceRequired: false}
}

// Validator kiểm tra từng field theo rule của profile
type Validator struct {
	validate *validator.Validate
	messages Messages
	profile  Profile
	now      func() time.Time
	tags     map[string]string
}

// ValidatorOption tùy chọn cho Validator
type ValidatorOption func(*Validator)

// WithClock thay đồng hồ dùng để lấy năm hiện tại
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) { v.now = now }
}

// WithMessages thay bộ thông báo lỗi
func WithMessages(m Messages) ValidatorOption {
	return func(v *Validator) { v.messages = m }
}

// NewValidator tạo Validator và đăng ký các rule tùy biến
func NewValidator(profile Profile, opts ...ValidatorOption) (*Validator, error) {
	v := &Validator{
		validate: validator.New(),
		profile:  profile,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.messages == nil {
		m, err := LoadMessages()
		if err != nil {
			return nil, err
		}
		v.messages = m
	}

	custom := map[string]validator.Func{
		"vn_phone":    matchRegexp(rePhone),
		"loose_email": matchRegexp(reEmail),
		"cccd":        matchRegexp(reCCCD),
		"dob_dmy":     func(fl validator.FieldLevel) bool { return v.validDMY(fl.Field().String()) },
		"dob_iso":     func(fl validator.FieldLevel) bool { return validISO(fl.Field().String()) },
	}
	for tag, fn := range custom {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("lỗi đăng ký rule %s: %w", tag, err)
		}
	}

	dobTag := "dob_iso"
	if profile.DOBFormat == DOBDMY {
		dobTag = "dob_dmy"
	}
	v.tags = map[string]string{
		models.FieldFullname:     "required",
		models.FieldDOB:          "required," + dobTag,
		models.FieldCCCD:         "required,cccd",
		models.FieldPhone:        "required,vn_phone",
		models.FieldEmail:        "required,loose_email",
		models.FieldStreetNumber: "required",
		models.FieldStreetName:   "required",
	}
	if profile.ProvinceRequired {
		v.tags[models.FieldProvince] = "required"
	}
	return v, nil
}

// Profile profile đang dùng
func (v *Validator) Profile() Profile { return v.profile }

// Check kiểm tra một field không phụ thuộc danh sách lựa chọn.
// Trả về nil nếu hợp lệ hoặc field không có rule.
func (v *Validator) Check(field, value string) *FieldError {
	tag, ok := v.tags[field]
	if !ok {
		return nil
	}
	err := v.validate.Var(strings.TrimSpace(value), tag)
	if err == nil {
		return nil
	}
	rule := RuleRequired
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		rule = verrs[0].Tag()
	}
	return v.fieldError(field, rule)
}

// CheckOption kiểm tra field chọn từ danh sách: giá trị đã chọn phải có trong danh sách.
func (v *Validator) CheckOption(field, value string, options []models.GeoUnit, required bool) *FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return v.fieldError(field, RuleRequired)
		}
		return nil
	}
	if _, ok := geo.FindUnit(options, value); !ok {
		return v.fieldError(field, RuleOption)
	}
	return nil
}

func (v *Validator) fieldError(field, rule string) *FieldError {
	return &FieldError{Field: field, Rule: rule, Message: v.messages.Lookup(field, rule)}
}

// validDMY dd/mm/yyyy, tháng 1-12, năm từ 1900 đến năm hiện tại, ngày không vượt số ngày của tháng
func (v *Validator) validDMY(s string) bool {
	m := reDMY.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return false
	}
	if year < MinBirthYear || year > v.now().Year() {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, time.Month(month))
}

func validISO(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// DaysInMonth số ngày của tháng, tính cả năm nhuận
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func matchRegexp(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
