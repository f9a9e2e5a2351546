package errors

import "strconv"

// ErrorCode identifies an application error class in API responses
type ErrorCode int32

const (
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_VALIDATION_FAILED ErrorCode = 1004

	// Meetings
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 2000
	ErrorCode_ACTION_ITEM_NOT_FOUND ErrorCode = 2001

	// Database
	ErrorCode_DB_CONNECTION_FAILED  ErrorCode = 4000
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 4001
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 4002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:       "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:     "VALIDATION_FAILED",
	ErrorCode_MEETING_NOT_FOUND:     "MEETING_NOT_FOUND",
	ErrorCode_ACTION_ITEM_NOT_FOUND: "ACTION_ITEM_NOT_FOUND",
	ErrorCode_DB_CONNECTION_FAILED:  "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:       "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED: "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}
