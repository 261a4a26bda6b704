// Package errs is a thin facade over cockroachdb/errors. Usecases attach
// their sentinels with Mark so handlers match on errors.Is while the full
// cause chain stays available for logging.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes sentinel an errors.Is match of err without replacing the cause.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}
