package api

import (
	"errors"
	"fmt"
)

// ErrNoToken indicates no bearer token is available; the call was never
// issued. A hard failure for that call, surfaced and not retried.
type ErrNoToken struct {
	Err error
}

func (e *ErrNoToken) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not logged in: %v", e.Err)
	}
	return "not logged in"
}

func (e *ErrNoToken) Unwrap() error { return e.Err }

// ErrAuth indicates the backend rejected the bearer token (401/403).
// Surfaced as "please log in again"; never retried automatically.
type ErrAuth struct {
	StatusCode int
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("authentication rejected (HTTP %d), please log in again", e.StatusCode)
}

// ErrServer indicates any other non-2xx response. Terminal for the user
// action that triggered the call.
type ErrServer struct {
	StatusCode int
	Body       string
}

func (e *ErrServer) Error() string {
	return fmt.Sprintf("server error (HTTP %d)", e.StatusCode)
}

// ErrUnavailable indicates the backend could not be reached at all.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// IsAuth reports whether err is an authentication failure, either a missing
// token or a 401/403 response. Browsing screens use this to show the
// "please log in again" message instead of a raw status code.
func IsAuth(err error) bool {
	var noTok *ErrNoToken
	var auth *ErrAuth
	return errors.As(err, &noTok) || errors.As(err, &auth)
}
