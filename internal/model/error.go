package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeInvalidDate         = "INVALID_DATE"
	ErrCodeMissingCalendarID   = "MISSING_CALENDAR_ID"
	ErrCodeCalendarUnavailable = "CALENDAR_UNAVAILABLE"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidDate         = NewDomainError(ErrCodeInvalidDate, "Travel dates must be formatted as YYYY-MM-DD")
	ErrMissingCalendarID   = NewDomainError(ErrCodeMissingCalendarID, "A calendar ID is required to fetch travel days")
	ErrCalendarUnavailable = NewDomainError(ErrCodeCalendarUnavailable, "The calendar source could not be reached")
)
