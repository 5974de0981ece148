package utils

// ErrorResponse is the single error payload shape used by every handler.
// Message is always present; Error carries the underlying detail on 500s.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
