package errs

import (
	"sync"

	cr "github.com/cockroachdb/errors"
)

// Error classes surfaced to callers. Use Is (not the standard library) to test
// for a class: sentinels created with Class report their class through it.
var (
	ErrValidation      = New("validation error")
	ErrConflict        = New("conflict")
	ErrNotFound        = New("not found")
	ErrForbidden       = New("forbidden")
	ErrExternalService = New("external service error")
	ErrRateLimited     = New("rate limited")
)

type registered struct {
	sentinel error
	class    error
}

var (
	classMu sync.RWMutex
	classes []registered
)

// Class creates a sentinel error that belongs to the given class.
func Class(msg string, class error) error {
	sentinel := New(msg)
	classMu.Lock()
	classes = append(classes, registered{sentinel: sentinel, class: class})
	classMu.Unlock()
	return sentinel
}

// Is reports whether err matches reference, either directly, through a mark,
// or because err matches a sentinel registered under the reference class.
func Is(err, reference error) bool {
	if err == nil || reference == nil {
		return err == reference
	}
	if is(err, reference) {
		return true
	}
	classMu.RLock()
	defer classMu.RUnlock()
	for _, r := range classes {
		if r.class == reference && is(err, r.sentinel) {
			return true
		}
	}
	return false
}

// Message is the text safe to show a caller: the first registered sentinel err
// matches, or the innermost cause when none does.
func Message(err error) string {
	if err == nil {
		return ""
	}
	classMu.RLock()
	defer classMu.RUnlock()
	for _, r := range classes {
		if is(err, r.sentinel) {
			return r.sentinel.Error()
		}
	}
	return cr.UnwrapAll(err).Error()
}
