package adapter

import "errors"

// Sentinel errors mirroring the server's error taxonomy. mapHTTPError wraps
// them with the response body so callers can branch with errors.Is and still
// see the server's message.
var (
	ErrValidation     = errors.New("request rejected by validation")
	ErrAuthentication = errors.New("authentication failed")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrServer         = errors.New("server error")
)
