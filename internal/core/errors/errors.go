package errors

const (
	HttpInternalError       = "internal_error"
	HttpReportNotFoundError = "report_not_found"
	HttpInvalidFormatError  = "invalid_format"
	HttpQueueFullError      = "queue_full"
)

// ErrorResponse is the error body returned by every HTTP endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
