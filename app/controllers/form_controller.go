package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shipping-form/app/models"
	"github.com/shipping-form/app/requests"
	"github.com/shipping-form/app/responses"
	"github.com/shipping-form/app/services"
	"github.com/shipping-form/internal/form"
	"go.uber.org/zap"
)

// Version phiên bản API
const Version = "1.0.0"

// FormController controller xử lý các request liên quan đến phiên form
type FormController struct {
	formService *services.FormService
	logger      *zap.Logger
}

// NewFormController tạo mới FormController
func NewFormController(formService *services.FormService, logger *zap.Logger) *FormController {
	return &FormController{
		formService: formService,
		logger:      logger,
	}
}

// Create tạo phiên form mới
func (fc *FormController) Create(c *gin.Context) {
	id, st := fc.formService.Create()
	c.JSON(http.StatusCreated, responses.NewFormStateResponse(id, st))
}

// Get lấy trạng thái phiên form
func (fc *FormController) Get(c *gin.Context) {
	id := c.Param("formID")
	st, err := fc.formService.State(id)
	if err != nil {
		fc.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.NewFormStateResponse(id, st))
}

// SetField gán giá trị một field; danh sách quận/phường được tính lại trong response
func (fc *FormController) SetField(c *gin.Context) {
	var req requests.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Request không hợp lệ: "+err.Error())
		return
	}

	id := c.Param("formID")
	st, err := fc.formService.SetField(id, req.Field, req.Value)
	if err != nil {
		fc.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.NewFormStateResponse(id, st))
}

// Submit gửi phiên form; hợp lệ thì phiên được reset
func (fc *FormController) Submit(c *gin.Context) {
	id := c.Param("formID")
	receipt, st, err := fc.formService.Submit(c.Request.Context(), id)
	if err != nil {
		fc.handleError(c, err)
		return
	}
	state := responses.NewFormStateResponse(id, st)
	c.JSON(http.StatusOK, responses.SubmitResponse{Receipt: receipt, State: &state})
}

// Reset đưa phiên form về rỗng
func (fc *FormController) Reset(c *gin.Context) {
	id := c.Param("formID")
	st, err := fc.formService.Reset(id)
	if err != nil {
		fc.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.NewFormStateResponse(id, st))
}

// Delete xóa phiên form
func (fc *FormController) Delete(c *gin.Context) {
	if err := fc.formService.Delete(c.Param("formID")); err != nil {
		fc.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitOnce gửi payload đầy đủ không cần phiên
func (fc *FormController) SubmitOnce(c *gin.Context) {
	var values models.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Request không hợp lệ: "+err.Error())
		return
	}

	receipt, err := fc.formService.SubmitOnce(c.Request.Context(), values)
	if err != nil {
		fc.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.SubmitResponse{Receipt: receipt})
}

// HealthCheck kiểm tra sức khỏe service
func (fc *FormController) HealthCheck(c *gin.Context) {
	uptime := time.Since(fc.formService.GetStartTime())

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   Version,
		Services: map[string]string{
			"form":    "healthy",
			"geo":     string(fc.formService.Shape()),
			"session": "healthy",
		},
	})
}

// handleError map lỗi service sang HTTP status
func (fc *FormController) handleError(c *gin.Context, err error) {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, responses.ValidationErrorResponse{
			Error:   "VALIDATION_FAILED",
			Message: "Thông tin chưa hợp lệ",
			Errors:  verr.Errors,
		})
	case errors.Is(err, services.ErrFormNotFound):
		respondError(c, http.StatusNotFound, "FORM_NOT_FOUND", "Không tìm thấy form: "+c.Param("formID"))
	case errors.Is(err, form.ErrUnknownField):
		respondError(c, http.StatusBadRequest, "UNKNOWN_FIELD", err.Error())
	default:
		fc.logger.Error("Lỗi xử lý form", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Lỗi xử lý form")
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, responses.ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
