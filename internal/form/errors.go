package form

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUnknownField field không thuộc form giao hàng
	ErrUnknownField = errors.New("form: unknown field")
	// ErrInvalid form còn lỗi validation
	ErrInvalid = errors.New("form: invalid")
)

// Tên rule dùng ngoài các tag của validator
const (
	RuleRequired = "required"
	RuleOption   = "option"
)

// FieldError lỗi của một field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors lỗi theo tên field
type FieldErrors map[string]FieldError

// Has kiểm tra field có lỗi không
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Fields danh sách field có lỗi, đã sắp xếp
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (fe FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// ValidationError lỗi trả về khi submit form chưa hợp lệ
type ValidationError struct {
	Errors FieldErrors
}

func (e *ValidationError) Error() string {
	return "form: invalid fields: " + strings.Join(e.Errors.Fields(), ", ")
}

// Unwrap cho phép errors.Is(err, ErrInvalid)
func (e *ValidationError) Unwrap() error { return ErrInvalid }
