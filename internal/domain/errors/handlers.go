package errors

// ErrorInfo is the error payload inside an ErrorResponse.
type ErrorInfo struct {
	Code    string `json:"code"`              // Stable business code, e.g. "PROVIDER_AUTH_REQUIRED".
	Message string `json:"message"`           // Human-readable summary.
	Details any    `json:"details,omitempty"` // Optional structured detail, stripped for 5xx.
}

// MetaInfo carries per-response metadata.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the envelope for every 2xx body.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for every non-2xx body.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
