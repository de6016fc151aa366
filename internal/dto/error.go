package dto

const (
	CodeNotFound     = "NOT_FOUND"
	CodeAlreadyLiked = "ALREADY_LIKED"
	CodeValidation   = "VALIDATION_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse 统一错误响应体
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

const InternalErrorMessage = "An unexpected error occurred"

// InternalError 500 响应体，details 只暴露错误类型名
func InternalError(typeName string) ErrorResponse {
	return ErrorResponse{
		Error:   CodeInternal,
		Message: InternalErrorMessage,
		Details: []string{typeName},
	}
}
