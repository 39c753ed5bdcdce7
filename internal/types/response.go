package types

import "time"

// Response is the uniform envelope wrapped around every HTTP response body.
type Response struct {
	StatusCode int       `json:"statusCode"`
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Data       any       `json:"data"`
	Timestamp  time.Time `json:"timestamp"`
}

// FieldError is one entry of a validation failure's detail list.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func NewSuccess(status int, message string, data any) Response {
	return Response{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}

func NewError(status int, message string, data any) Response {
	return Response{
		StatusCode: status,
		Success:    false,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}
