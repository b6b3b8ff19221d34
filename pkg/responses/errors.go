package responses

import "fmt"

// Error codes double as the HTTP status the error is surfaced with.
const (
	CodeSuccess       = 200
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeConflict      = 409
	CodeInternalError = 500
)

// AppError is the application error carried from services up to handlers.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New creates an AppError.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an underlying error into an AppError.
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Predefined errors
var (
	ErrBadRequest     = New(CodeBadRequest, "invalid request parameters")
	ErrUnauthorized   = New(CodeUnauthorized, "authentication required")
	ErrForbidden      = New(CodeForbidden, "you do not have permission to perform this action")
	ErrNotFound       = New(CodeNotFound, "resource not found")
	ErrConflict       = New(CodeConflict, "resource already exists")
	ErrInternalError  = New(CodeInternalError, "internal server error")
	ErrDatabaseError  = New(CodeInternalError, "database error")
	ErrRecordNotFound = New(CodeNotFound, "record not found")

	ErrInvalidCredentials = New(CodeUnauthorized, "invalid username or password")
	ErrInvalidToken       = New(CodeUnauthorized, "invalid token")
	ErrTokenExpired       = New(CodeUnauthorized, "token expired")
	ErrChartRendering     = New(CodeInternalError, "Could not generate chart URL.")
)
