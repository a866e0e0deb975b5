package udns

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Wire error codes returned by the UltraDNS REST API.
const (
	CodeTokenExpired      = 60001 // Bearer access token expired
	CodeZoneNotFound      = 1801  // Zone does not exist
	CodeZoneAlreadyExists = 1802  // Zone name already taken
	CodePermissionDenied  = 8001  // Insufficient permissions
	CodeRecordExists      = 2111  // RRSet already exists
	CodeRecordsNotFound   = 70002 // No records matched the query
	CodeRecordNotFound    = 56001 // RRSet does not exist
)

// errorKind classifies wire errors so that two distinct wire codes can map
// to the same caller-visible condition (56001 and 70002 both mean "records
// not found").
type errorKind int

const (
	kindDNS errorKind = iota // unmapped wire code
	kindPermissionDenied
	kindZoneNotFound
	kindZoneAlreadyExists
	kindRecordAlreadyExists
	kindRecordsNotFound
	kindHTTP // non-JSON error body
)

// kindByCode maps wire error codes to kinds. Built once; never mutated.
var kindByCode = map[int]errorKind{
	CodePermissionDenied:  kindPermissionDenied,
	CodeZoneNotFound:      kindZoneNotFound,
	CodeZoneAlreadyExists: kindZoneAlreadyExists,
	CodeRecordExists:      kindRecordAlreadyExists,
	CodeRecordsNotFound:   kindRecordsNotFound,
	CodeRecordNotFound:    kindRecordsNotFound,
}

// Sentinel errors for use with errors.Is.
var (
	ErrPermissionDenied    = &Error{kind: kindPermissionDenied, Code: CodePermissionDenied, Message: "permission denied"}
	ErrZoneNotFound        = &Error{kind: kindZoneNotFound, Code: CodeZoneNotFound, Message: "zone not found"}
	ErrZoneAlreadyExists   = &Error{kind: kindZoneAlreadyExists, Code: CodeZoneAlreadyExists, Message: "zone already exists"}
	ErrRecordAlreadyExists = &Error{kind: kindRecordAlreadyExists, Code: CodeRecordExists, Message: "record already exists"}
	ErrRecordsNotFound     = &Error{kind: kindRecordsNotFound, Code: CodeRecordsNotFound, Message: "records not found"}
	ErrHTTPLevel           = &Error{kind: kindHTTP, Message: "HTTP-level error"}
)

// Transaction state errors. All are raised locally, before any network call.
var (
	ErrTransactionInProgress = errors.New("udns: transaction already in progress")
	ErrNoActiveTransaction   = errors.New("udns: no active transaction")
	ErrEmptyTransaction      = errors.New("udns: empty transaction")
	ErrReadInTransaction     = errors.New("udns: read issued inside an open transaction")
)

// Error represents an UltraDNS REST API error.
type Error struct {
	kind    errorKind
	Code    int    // Wire errorCode (0 for HTTP-level errors)
	Message string // Message from the server, or a synthesized one
}

func (e *Error) Error() string {
	if e.kind == kindDNS {
		return fmt.Sprintf("%d: %s", e.Code, e.Message)
	}
	return e.Message
}

// Is implements errors.Is. Errors compare equal by kind, so both wire codes
// that mean "records not found" match ErrRecordsNotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// IsZoneNotFound checks if an error indicates a missing zone.
func IsZoneNotFound(err error) bool {
	return errors.Is(err, ErrZoneNotFound)
}

// IsZoneAlreadyExists checks if an error indicates a duplicate zone.
func IsZoneAlreadyExists(err error) bool {
	return errors.Is(err, ErrZoneAlreadyExists)
}

// IsPermissionDenied checks if an error indicates insufficient permissions.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsRecordAlreadyExists checks if an error indicates a duplicate record.
func IsRecordAlreadyExists(err error) bool {
	return errors.Is(err, ErrRecordAlreadyExists)
}

// IsRecordsNotFound checks if an error indicates that no records matched.
func IsRecordsNotFound(err error) bool {
	return errors.Is(err, ErrRecordsNotFound)
}

// AuthError reports a failed token refresh. The refresh endpoint's raw
// response body is preserved as-is rather than routed through the decoder.
type AuthError struct {
	Body string
}

func (e *AuthError) Error() string {
	return "udns: token refresh failed: " + e.Body
}

// TransactionError reports a failed batch commit. Messages holds the
// per-operation error messages in submission order.
type TransactionError struct {
	Messages []string
}

func (e *TransactionError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// wireError is the error shape the API uses in both plain and batch
// responses.
type wireError struct {
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// decodeError turns an error response into a typed error. The body may be a
// JSON array of errors (element 0 wins), a single JSON error object, or
// arbitrary non-JSON content.
func decodeError(statusCode int, body []byte) error {
	var code int
	var msg string

	var list []wireError
	var obj wireError
	switch {
	case json.Unmarshal(body, &list) == nil && len(list) > 0:
		code, msg = list[0].ErrorCode, list[0].ErrorMessage
	case json.Unmarshal(body, &obj) == nil && obj.ErrorCode != 0:
		code, msg = obj.ErrorCode, obj.ErrorMessage
	default:
		return &Error{
			kind:    kindHTTP,
			Message: fmt.Sprintf("HTTP-level error. HTTP code: %d; response body: %s", statusCode, body),
		}
	}

	if kind, ok := kindByCode[code]; ok {
		return &Error{kind: kind, Code: code, Message: msg}
	}
	return &Error{kind: kindDNS, Code: code, Message: msg}
}

// decodeBatchError turns a failed batch response into a TransactionError
// carrying the ordered per-operation messages. Bodies without an errors
// array fall back to the plain decoder.
func decodeBatchError(statusCode int, body []byte) error {
	var payload struct {
		Errors []wireError `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Errors) == 0 {
		return decodeError(statusCode, body)
	}

	messages := make([]string, len(payload.Errors))
	for i, e := range payload.Errors {
		messages[i] = e.ErrorMessage
	}
	return &TransactionError{Messages: messages}
}
