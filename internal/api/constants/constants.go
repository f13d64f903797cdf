package constants

// Context keys used to pass data between middleware and handlers
const (
	ContextKeyContact   = "contact"
	ContextKeyRequestID = "RequestID"
	ContextKeyRawBody   = "rawBody"
)
