// Package prompt chạy form thông tin giao hàng trên terminal: hỏi lần lượt từng field,
// danh sách tỉnh/quận/phường được tính lại sau mỗi lựa chọn.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/shipping-form/app/models"
	"github.com/shipping-form/internal/form"
	"github.com/shipping-form/internal/normalizer"
	"go.uber.org/zap"
)

// SkipOption lựa chọn bỏ qua khi field chọn không bắt buộc
const SkipOption = "(bỏ qua)"

// Labels nhãn hiển thị của từng field
var Labels = map[string]string{
	models.FieldFullname:     "Họ và tên",
	models.FieldDOB:          "Ngày sinh",
	models.FieldCCCD:         "CCCD",
	models.FieldPhone:        "Số điện thoại",
	models.FieldEmail:        "Email",
	models.FieldStreetNumber: "Số nhà",
	models.FieldStreetName:   "Tên đường",
	models.FieldProvince:     "Tỉnh/Thành phố",
	models.FieldDistrict:     "Quận/Huyện",
	models.FieldWard:         "Phường/Xã",
}

// Submitter gửi form đã nhập
type Submitter interface {
	Submit(ctx context.Context, f *form.Form) (*models.Receipt, error)
}

// Runner điều phối một lượt nhập form trên terminal
type Runner struct {
	driver    Driver
	form      *form.Form
	submitter Submitter
	dobHelp   string
	pageSize  int
	logger    *zap.Logger
}

// Option cấu hình Runner
type Option func(*Runner)

// WithDOBHelp gợi ý định dạng ngày sinh
func WithDOBHelp(help string) Option {
	return func(r *Runner) { r.dobHelp = help }
}

// WithPageSize số dòng hiển thị của danh sách chọn
func WithPageSize(n int) Option {
	return func(r *Runner) { r.pageSize = n }
}

// NewRunner tạo Runner trên form rỗng
func NewRunner(driver Driver, f *form.Form, submitter Submitter, logger *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		driver:    driver,
		form:      f,
		submitter: submitter,
		pageSize:  10,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run hỏi toàn bộ field theo thứ tự rồi gửi. Form còn lỗi thì hỏi lại các field lỗi
// cho tới khi gửi được hoặc người dùng hủy.
func (r *Runner) Run(ctx context.Context) (*models.Receipt, error) {
	fields := models.FieldNames
	for {
		for _, field := range fields {
			if err := r.ask(ctx, field); err != nil {
				return nil, err
			}
		}

		receipt, err := r.submitter.Submit(ctx, r.form)
		if err == nil {
			if err := r.driver.Info(ctx, receipt.Message); err != nil {
				return nil, err
			}
			return receipt, nil
		}

		var verr *form.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		r.logger.Debug("Form chưa hợp lệ, hỏi lại", zap.Strings("fields", verr.Errors.Fields()))

		fields = nil
		for _, field := range models.FieldNames {
			fe, ok := verr.Errors[field]
			if !ok {
				continue
			}
			if err := r.driver.Info(ctx, Labels[field]+": "+fe.Message); err != nil {
				return nil, err
			}
			fields = append(fields, field)
		}
	}
}

func (r *Runner) ask(ctx context.Context, field string) error {
	switch field {
	case models.FieldProvince:
		return r.choose(ctx, field, r.form.Provinces())
	case models.FieldDistrict:
		return r.choose(ctx, field, r.form.Districts())
	case models.FieldWard:
		return r.choose(ctx, field, r.form.Wards())
	}

	current, err := r.form.Get(field)
	if err != nil {
		return err
	}
	cfg := InputConfig{
		Message: Labels[field],
		Default: current,
		Validator: func(s string) error {
			if fe := r.form.CheckField(field, s); fe != nil {
				return errors.New(fe.Message)
			}
			return nil
		},
	}
	if field == models.FieldDOB {
		cfg.Help = r.dobHelp
	}

	value, err := r.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	return r.form.Set(field, value)
}

// choose hỏi field chọn; danh sách rỗng thì bỏ qua field
func (r *Runner) choose(ctx context.Context, field string, units []models.GeoUnit) error {
	if len(units) == 0 {
		return nil
	}

	var labels []string
	skippable := r.form.CheckField(field, "") == nil
	if skippable {
		labels = append(labels, SkipOption)
	}
	current, err := r.form.Get(field)
	if err != nil {
		return err
	}
	defaultIdx := 0
	for _, u := range units {
		if u.Code == current {
			defaultIdx = len(labels)
		}
		labels = append(labels, u.String())
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      Labels[field],
		Options:      labels,
		DefaultIndex: defaultIdx,
		PageSize:     r.pageSize,
		Filter:       normalizer.Matches,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(labels) {
		return fmt.Errorf("prompt: lựa chọn %d ngoài danh sách %s", idx, field)
	}

	if skippable {
		if idx == 0 {
			return r.form.Set(field, "")
		}
		idx--
	}
	return r.form.Set(field, units[idx].Code)
}
