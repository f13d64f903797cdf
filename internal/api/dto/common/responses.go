package common

// ErrorResponse is the body returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error messages
const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgNotFound         = "Not found"
	MsgInternalServer   = "Internal server error"
	MsgRateLimited      = "Rate limit exceeded. Please try again later."
	MsgBodyTooLarge     = "Request body too large"
)

// NewErrorResponse creates a new error response body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
