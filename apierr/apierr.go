// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package apierr defines the classified failures a handler can return.
// Anything that is not an *Error is treated as an internal failure.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure with a client-facing status and message.
type Error struct {
	Status  int
	Message string
	Err     error // optional cause, logged but never sent to the client
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthenticated is used when no credential was supplied at all.
func Unauthenticated(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Unauthorized is used when a supplied credential was wrong.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// As reports whether err is (or wraps) a classified failure.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
