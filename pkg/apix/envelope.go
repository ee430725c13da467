// Package apix defines the uniform response envelope every endpoint returns.
package apix

// Envelope wraps every API response, success and error alike.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data"`
}

// Success builds a 200 success envelope.
func Success(message string, data any) Envelope {
	return Envelope{
		Status:  "success",
		Message: message,
		Code:    200,
		Data:    data,
	}
}

// Error builds an error envelope with a nil data payload.
func Error(message string, code int) Envelope {
	return Envelope{
		Status:  "error",
		Message: message,
		Code:    code,
		Data:    nil,
	}
}
