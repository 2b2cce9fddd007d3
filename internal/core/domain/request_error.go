package domain

import "fmt"

// Failure classes used by the request mediator and its metrics.
const (
	ClassConnectivity = "connectivity"
	ClassBadRequest   = "bad_request"
	ClassUnauthorized = "unauthorized"
	ClassForbidden    = "forbidden"
	ClassNotFound     = "not_found"
	ClassServerFault  = "server_fault"
	ClassUnavailable  = "unavailable"
	ClassGeneric      = "generic"
)

// RequestError is the normalized form of a failed exchange. Status 0 means
// the request never produced a response (transport-level failure).
type RequestError struct {
	Status  int
	Class   string
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed (%d): %s: %v", e.Status, e.Message, e.Cause)
}

// Unwrap exposes the original cause for errors.Is / errors.As chains.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// ClassifyStatus maps a status signal onto the fixed failure taxonomy.
// The raw message is only used for statuses outside the table.
func ClassifyStatus(status int, raw string, cause error) *RequestError {
	var class, msg string
	switch status {
	case 0:
		class, msg = ClassConnectivity, "connection error, check your network"
	case 400:
		class, msg = ClassBadRequest, "invalid request data"
	case 401:
		class, msg = ClassUnauthorized, "not authorized, please sign in again"
	case 403:
		class, msg = ClassForbidden, "access denied"
	case 404:
		class, msg = ClassNotFound, "resource not found"
	case 500:
		class, msg = ClassServerFault, "internal server error"
	case 503:
		class, msg = ClassUnavailable, "service temporarily unavailable"
	default:
		class = ClassGeneric
		msg = fmt.Sprintf("error %d: %s", status, raw)
	}
	return &RequestError{Status: status, Class: class, Message: msg, Cause: cause}
}
