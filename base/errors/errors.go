// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// New is equivalent to [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is equivalent to [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is equivalent to [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is equivalent to [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is equivalent to [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
