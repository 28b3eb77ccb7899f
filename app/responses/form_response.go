package responses

import (
	"github.com/shipping-form/app/models"
	"github.com/shipping-form/internal/form"
)

// FormStateResponse trạng thái một phiên form
type FormStateResponse struct {
	FormID    string            `json:"form_id"`   // ID phiên form
	Values    models.FormValues `json:"values"`    // Giá trị hiện tại
	Districts []models.GeoUnit  `json:"districts"` // Danh sách quận/huyện
	Wards     []models.GeoUnit  `json:"wards"`     // Danh sách phường/xã
	Errors    form.FieldErrors  `json:"errors"`    // Lỗi theo field
}

// NewFormStateResponse tạo response từ snapshot trạng thái
func NewFormStateResponse(id string, st form.State) FormStateResponse {
	return FormStateResponse{
		FormID:    id,
		Values:    st.Values,
		Districts: st.Districts,
		Wards:     st.Wards,
		Errors:    st.Errors,
	}
}

// SubmitResponse response gửi form thành công
type SubmitResponse struct {
	Receipt *models.Receipt    `json:"receipt"`        // Xác nhận
	State   *FormStateResponse `json:"state,omitempty"` // Trạng thái phiên sau reset
}

// ValidationErrorResponse response form chưa hợp lệ
type ValidationErrorResponse struct {
	Error   string           `json:"error"`   // Mã lỗi
	Message string           `json:"message"` // Thông báo lỗi
	Errors  form.FieldErrors `json:"errors"`  // Lỗi theo field
}

// GeoListResponse danh sách đơn vị hành chính
type GeoListResponse struct {
	Level  string           `json:"level"`            // province | district | ward
	Parent string           `json:"parent,omitempty"` // Mã đơn vị cha
	Items  []models.GeoUnit `json:"items"`            // Danh sách
	Total  int              `json:"total"`            // Số lượng
}

// ErrorResponse response lỗi
type ErrorResponse struct {
	Error     string      `json:"error"`             // Mã lỗi
	Message   string      `json:"message"`           // Thông báo lỗi
	Details   interface{} `json:"details,omitempty"` // Chi tiết lỗi
	Timestamp string      `json:"timestamp"`         // Thời gian xảy ra lỗi
}

// HealthCheckResponse response kiểm tra sức khỏe
type HealthCheckResponse struct {
	Status    string            `json:"status"`    // Trạng thái sức khỏe
	Timestamp string            `json:"timestamp"` // Thời gian kiểm tra
	Uptime    string            `json:"uptime"`    // Thời gian hoạt động
	Version   string            `json:"version"`   // Phiên bản
	Services  map[string]string `json:"services"`  // Trạng thái các service
}
