package qa

import (
	"errors"
	"fmt"
)

// ErrInternal marks invariant violations inside the engine itself: a bug in
// this tool, never a defect of the assessed document. Callers can separate
// the two with errors.Is.
var ErrInternal = errors.New("internal invariant violation")

// InputError reports a snapshot that violates the input contract. It is a
// caller bug, raised before any check pass runs, and is never downgraded to
// a quality issue.
type InputError struct {
	err error
}

func inputErr(format string, args ...any) *InputError {
	return &InputError{err: fmt.Errorf(format, args...)}
}

func (e *InputError) Error() string { return "invalid input: " + e.err.Error() }
func (e *InputError) Unwrap() error { return e.err }

// ConfigError reports configuration the engine refuses to run with. Like
// InputError it fails fast, before any check pass runs.
type ConfigError struct {
	err error
}

func configErr(format string, args ...any) *ConfigError {
	return &ConfigError{err: fmt.Errorf(format, args...)}
}

func (e *ConfigError) Error() string { return "invalid configuration: " + e.err.Error() }
func (e *ConfigError) Unwrap() error { return e.err }
