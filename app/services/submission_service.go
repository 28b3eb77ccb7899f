package services

import (
	"context"
	"time"

	"github.com/shipping-form/app/models"
	"github.com/shipping-form/helpers/utils"
	"github.com/shipping-form/internal/form"
	"go.uber.org/zap"
)

// AckMessage thông báo xác nhận gửi thành công
const AckMessage = "Gửi thành công!"

// Sink nơi nhận form hợp lệ, trả về thông báo xác nhận
type Sink interface {
	Deliver(ctx context.Context, values models.FormValues) (string, error)
}

// LogSink ghi payload ra log và xác nhận, không lưu trữ hay gọi mạng
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink tạo mới LogSink
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver implements Sink
func (s *LogSink) Deliver(ctx context.Context, values models.FormValues) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.logger.Info("Nhận form giao hàng", zap.Any("payload", values))
	return AckMessage, nil
}

// SubmissionService validate form, chuyển snapshot cho Sink rồi reset form
type SubmissionService struct {
	sink   Sink
	logger *zap.Logger
	now    func() time.Time
}

// NewSubmissionService tạo mới SubmissionService
func NewSubmissionService(sink Sink, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// Submit chạy toàn bộ rule. Form lỗi trả về *form.ValidationError và giữ nguyên trạng thái;
// form hợp lệ được gửi cho Sink và reset về rỗng.
func (ss *SubmissionService) Submit(ctx context.Context, f *form.Form) (*models.Receipt, error) {
	if errs := f.Validate(); len(errs) > 0 {
		ss.logger.Debug("Form chưa hợp lệ", zap.Strings("fields", errs.Fields()))
		return nil, &form.ValidationError{Errors: errs}
	}

	values := f.Values()
	msg, err := ss.sink.Deliver(ctx, values)
	if err != nil {
		ss.logger.Error("Lỗi gửi form", zap.Error(err))
		return nil, err
	}

	receipt := &models.Receipt{
		ID:          utils.GenerateUUID(),
		Message:     msg,
		Values:      values,
		SubmittedAt: ss.now(),
	}
	f.Reset()

	ss.logger.Info("Đã gửi form", zap.String("receipt_id", receipt.ID))
	return receipt, nil
}
