package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidID       = errors.New("invalid game id")
	ErrInvalidCount    = errors.New("invalid cube count")
	ErrUnknownColor    = errors.New("unknown color")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindIOFailure       ErrorKind = "io_failure"
	KindMalformedRecord ErrorKind = "malformed_record"
	KindInvalidID       ErrorKind = "invalid_id"
	KindInvalidCount    ErrorKind = "invalid_count"
	KindUnknownColor    ErrorKind = "unknown_color"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Line int    // Optional: 1-based input line
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	switch {
	case e.Path != "" && e.Line > 0:
		base += fmt.Sprintf(" (%s:%d)", e.Path, e.Line)
	case e.Path != "":
		base += fmt.Sprintf(" (path=%s)", e.Path)
	case e.Line > 0:
		base += fmt.Sprintf(" (line=%d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
// It also looks inside errors combined with errors.Join.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == kind {
		return true
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if IsKind(e, kind) {
				return true
			}
		}
	}
	return false
}

func parseError(kind ErrorKind, sentinel error, format string, args ...any) error {
	return &OpError{
		Op:   "domain.parse_game",
		Kind: kind,
		Err:  fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}
