package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrNotFound            = NewError(NotFound, "not found")
	ErrURITooLong          = NewError(RequestURITooLong, "request URI too long")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
	ErrNotImplemented      = NewError(NotImplemented, "request method is not supported")
	ErrServiceUnavailable  = NewError(ServiceUnavailable, "too many pending connections")
)

// CodeOf extracts the status code carried by an HTTPError. Any other error is treated
// as an internal one.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}
