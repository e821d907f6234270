package pkg

import "fmt"

// AppError is the application-level error carried from usecases to the HTTP layer.
//
// Code is a stable machine-readable identifier; Message is safe to return to the
// client. Err (optional) keeps the underlying cause for logs, never for responses.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the wire shape for all error responses.
type HTTPError struct {
	ErrorCode string `json:"error"`
	Details   string `json:"details"`
}

// ToHTTPError converts the AppError into the client-facing body. Internal causes
// are deliberately omitted.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		ErrorCode: e.Code,
		Details:   e.Message,
	}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
