package types

import (
	"net/http"

	appErr "github.com/mogith007/skillswap/pkg/errors"
)

const internalMessage = "Internal server error"

// StatusFor maps an error code onto an HTTP status.
func StatusFor(code appErr.Code) int {
	switch code {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeForbidden:
		return http.StatusForbidden
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError builds the status and envelope for err. Internal and unknown
// errors never expose their message.
func FromError(err error) (int, APIResponse) {
	ae, ok := appErr.As(err)
	if !ok {
		return http.StatusInternalServerError, Fail(internalMessage)
	}
	status := StatusFor(ae.Code)
	if status == http.StatusInternalServerError {
		return status, Fail(internalMessage)
	}
	return status, Fail(ae.Message, ae.Violations()...)
}
