package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err so that Is(err, markErr) holds while keeping err's message.
// Kinds carried by markErr (see domain_errors.go) are carried over as well,
// since marks themselves are not transitive.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	marked := cr.Mark(err, markErr)
	for _, kind := range kinds {
		if kind != markErr && cr.Is(markErr, kind) {
			marked = cr.Mark(marked, kind)
		}
	}
	return marked
}

// WithCause returns sentinel with cause attached for logs only. The message
// and Is identity are the sentinel's.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return cr.WithSecondaryError(cr.WithStack(sentinel), cause)
}

// Is understands marks added by Mark in addition to the usual wrap chain.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
