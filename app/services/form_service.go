package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shipping-form/app/models"
	"github.com/shipping-form/helpers/utils"
	"github.com/shipping-form/internal/form"
	"github.com/shipping-form/internal/geo"
	"go.uber.org/zap"
)

// ErrFormNotFound không tìm thấy phiên form (chưa tạo, đã xóa hoặc bị đẩy khỏi LRU)
var ErrFormNotFound = errors.New("form not found")

// session một phiên form; Form không an toàn đồng thời nên khóa theo phiên
type session struct {
	mu   sync.Mutex
	form *form.Form
}

// FormService quản lý các phiên form trong bộ nhớ (LRU giới hạn kích thước)
type FormService struct {
	cascader  geo.Cascader
	validator *form.Validator
	mode      form.Mode
	submitter *SubmissionService
	sessions  *lru.Cache[string, *session]
	logger    *zap.Logger
	startTime time.Time
}

// NewFormService tạo mới FormService
func NewFormService(cascader geo.Cascader, validator *form.Validator, mode form.Mode, submitter *SubmissionService, maxSessions int, logger *zap.Logger) (*FormService, error) {
	sessions, err := lru.NewWithEvict[string, *session](maxSessions, func(id string, _ *session) {
		logger.Debug("Phiên form bị đẩy khỏi LRU", zap.String("form_id", id))
	})
	if err != nil {
		return nil, fmt.Errorf("không thể tạo LRU cho phiên form: %w", err)
	}

	return &FormService{
		cascader:  cascader,
		validator: validator,
		mode:      mode,
		submitter: submitter,
		sessions:  sessions,
		logger:    logger,
		startTime: time.Now(),
	}, nil
}

// NewForm tạo form rỗng không gắn phiên
func (fs *FormService) NewForm() *form.Form {
	return form.New(fs.cascader, fs.validator, form.WithMode(fs.mode))
}

// Create tạo phiên form mới
func (fs *FormService) Create() (string, form.State) {
	id := utils.GenerateUUID()
	f := fs.NewForm()
	fs.sessions.Add(id, &session{form: f})
	fs.logger.Debug("Tạo phiên form", zap.String("form_id", id))
	return id, f.State()
}

// State trạng thái hiện tại của phiên
func (fs *FormService) State(id string) (form.State, error) {
	var st form.State
	err := fs.withSession(id, func(f *form.Form) error {
		st = f.State()
		return nil
	})
	return st, err
}

// SetField gán giá trị field của phiên
func (fs *FormService) SetField(id, field, value string) (form.State, error) {
	var st form.State
	err := fs.withSession(id, func(f *form.Form) error {
		if err := f.Set(field, value); err != nil {
			return err
		}
		st = f.State()
		return nil
	})
	return st, err
}

// Submit gửi phiên form. Lỗi validation trả về kèm trạng thái có lỗi.
func (fs *FormService) Submit(ctx context.Context, id string) (*models.Receipt, form.State, error) {
	var (
		receipt *models.Receipt
		st      form.State
	)
	err := fs.withSession(id, func(f *form.Form) error {
		var err error
		receipt, err = fs.submitter.Submit(ctx, f)
		st = f.State()
		return err
	})
	return receipt, st, err
}

// Reset đưa phiên về trạng thái rỗng
func (fs *FormService) Reset(id string) (form.State, error) {
	var st form.State
	err := fs.withSession(id, func(f *form.Form) error {
		f.Reset()
		st = f.State()
		return nil
	})
	return st, err
}

// Delete xóa phiên
func (fs *FormService) Delete(id string) error {
	if !fs.sessions.Remove(id) {
		return fmt.Errorf("%w: %s", ErrFormNotFound, id)
	}
	return nil
}

// SubmitOnce gửi một payload đầy đủ không cần phiên. Giá trị được replay theo
// thứ tự cascade nên tỉnh luôn được set trước quận và phường.
func (fs *FormService) SubmitOnce(ctx context.Context, values models.FormValues) (*models.Receipt, error) {
	f := fs.NewForm()
	for _, field := range models.FieldNames {
		v, _ := values.Get(field)
		if err := f.Set(field, v); err != nil {
			return nil, err
		}
	}
	return fs.submitter.Submit(ctx, f)
}

// Provinces danh sách tỉnh/thành
func (fs *FormService) Provinces() []models.GeoUnit { return fs.cascader.Provinces() }

// Districts quận/huyện của tỉnh
func (fs *FormService) Districts(province string) []models.GeoUnit {
	return fs.cascader.Districts(province)
}

// Wards phường/xã của tỉnh (và quận)
func (fs *FormService) Wards(province, district string) []models.GeoUnit {
	return fs.cascader.Wards(province, district)
}

// Shape dạng dataset đang dùng
func (fs *FormService) Shape() geo.Shape { return fs.cascader.Shape() }

// ActiveSessions số phiên đang giữ
func (fs *FormService) ActiveSessions() int { return fs.sessions.Len() }

// GetStartTime thời điểm khởi tạo service
func (fs *FormService) GetStartTime() time.Time { return fs.startTime }

func (fs *FormService) withSession(id string, fn func(f *form.Form) error) error {
	if !utils.IsUUID(id) {
		return fmt.Errorf("%w: %s", ErrFormNotFound, id)
	}
	s, ok := fs.sessions.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFormNotFound, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.form)
}
