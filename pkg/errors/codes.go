package errors

// Common error codes shared across the service.
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrUnavailable     = "UNAVAILABLE"
	ErrUnprocessable   = "UNPROCESSABLE"
)

// codeMapping maps error codes to HTTP status codes.
var codeMapping = map[string]int{
	ErrInternal:        500,
	ErrNotFound:        404,
	ErrInvalidArgument: 400,
	ErrUnauthenticated: 401,
	ErrUnauthorized:    403,
	ErrConflict:        409,
	ErrUnavailable:     503,
	ErrUnprocessable:   422,
}

// GetCodeMapping returns the HTTP status for an error code, defaulting to 500.
func GetCodeMapping(code string) int {
	if status, ok := codeMapping[code]; ok {
		return status
	}
	return 500
}
