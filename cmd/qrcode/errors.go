package main

import (
	"fmt"
)

const (
	exitOK     = 0
	exitUsage  = 1
	exitEncode = 2
	exitIO     = 4
)

// exitError carries the process exit code for a failed invocation.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	switch e.code {
	case exitEncode:
		return fmt.Sprintf("could not create QR code from data (%v)", e.err)
	case exitIO:
		return fmt.Sprintf("could not save QR code to file (%v)", e.err)
	default:
		return e.err.Error()
	}
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func usageErrorf(format string, a ...interface{}) error {
	return usageError(fmt.Errorf(format, a...))
}
