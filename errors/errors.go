// Package errors accumulates independent failures so that a check can report
// all of them at once instead of stopping at the first one.
package errors

import "errors"

// Collection gathers errors in the order they are added. It is not safe for
// concurrent use.
type Collection struct {
	errs []error
}

// Add records err. Nil is ignored so results can be passed straight through.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Clear forgets every recorded error.
func (c *Collection) Clear() {
	c.errs = nil
}

// Len returns the number of recorded errors.
func (c *Collection) Len() int {
	return len(c.errs)
}

// HasError reports whether at least one error was recorded.
func (c *Collection) HasError() bool {
	return len(c.errs) > 0
}

// Errors returns a copy of the recorded errors.
func (c *Collection) Errors() []error {
	return append([]error(nil), c.errs...)
}

// GetError returns nil when nothing was recorded, the error itself when there
// is exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		return errors.Join(c.errs...)
	}
}
