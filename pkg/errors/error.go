package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// ErrInvalidPeriod represents an error when an indicator is constructed
	// with a lookback period that is too short.
	ErrInvalidPeriod ErrorCode = "indicator_invalid_period"
	// ErrUnknownSymbol represents an error when a bar arrives for a symbol
	// the indicator was not configured to track.
	ErrUnknownSymbol ErrorCode = "indicator_unknown_symbol"
	// ErrUnknownMarket represents an error when no exchange timezone is
	// registered for a market.
	ErrUnknownMarket ErrorCode = "market_unknown_market"
	// ErrInvalidBar represents an error when a bar payload fails validation.
	ErrInvalidBar ErrorCode = "market_invalid_bar"

	// QuestDBConnectionError represents an error when connecting to QuestDB.
	QuestDBConnectionError ErrorCode = "questdb_connection_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
)

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "period must be at least 2".
	Message string

	// Code (required) is the machine-readable error code string.
	// E.g. "indicator_invalid_period".
	Code ErrorCode

	// Field (optional) is the related field the error occurred on, if any.
	Field string
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message string, code ErrorCode, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// Error is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error` has a specific code.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	errDetails, ok := err.(*ErrorDetails)
	if !ok {
		return false
	}

	return errDetails.Code == code
}
