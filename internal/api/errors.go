package api

import (
	"fmt"
	"net/http"

	appErrors "memento/internal/errors"
)

// RequestError wraps a failed call against the Memento backend.
type RequestError struct {
	Method string
	Path   string
	Status int
	Detail string
	Err    error
}

func (e RequestError) Error() string {
	if e.Status != 0 {
		if e.Detail != "" {
			return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.Status, e.Detail)
		}
		return fmt.Sprintf("%s %s returned %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e RequestError) Unwrap() error {
	return e.Err
}

func classifyStatusError(method, path string, status int, detail string) error {
	reqErr := RequestError{Method: method, Path: path, Status: status, Detail: detail}
	switch status {
	case http.StatusUnauthorized:
		return appErrors.New(appErrors.CodeUnauthorized, reqErr.Error(), reqErr)
	case http.StatusNotFound:
		return appErrors.New(appErrors.CodeNotFound, reqErr.Error(), reqErr)
	default:
		return appErrors.New(appErrors.CodeTransportFailed, reqErr.Error(), reqErr)
	}
}

func classifyTransportError(method, path string, err error) error {
	reqErr := RequestError{Method: method, Path: path, Err: err}
	return appErrors.New(appErrors.CodeTransportFailed, reqErr.Error(), reqErr)
}

func classifyParseError(method, path string, err error) error {
	reqErr := RequestError{Method: method, Path: path, Err: err}
	return appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("%s %s: decode response: %v", method, path, err), reqErr)
}
