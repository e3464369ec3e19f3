package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ENTRY_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the unified JSON envelope emitted by the error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
