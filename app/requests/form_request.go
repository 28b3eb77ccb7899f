package requests

// SetFieldRequest request gán giá trị một field của phiên form
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"` // Tên field
	Value string `json:"value"`                    // Giá trị, rỗng để bỏ chọn
}
