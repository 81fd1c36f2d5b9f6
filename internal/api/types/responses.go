// Package types holds the HTTP request and response shapes.
package types

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(data any, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

func Fail(message string, errs ...string) APIResponse {
	return APIResponse{Success: false, Message: message, Errors: errs}
}

// TokenResponse is returned by admin login.
type TokenResponse struct {
	Token string `json:"token"`
}

// HealthStatus is returned by the probe endpoints.
type HealthStatus struct {
	Status string `json:"status"`
}
