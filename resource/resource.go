// Package resource implements the loan pattern: a scoped acquire/use/release
// helper that guarantees release on every exit path, and a Lender that
// tracks named resources with bounded lending capacity.
package resource

import (
	"errors"
	"fmt"

	"github.com/k70suK3-k06a7ash1/monadic-go/maybe"
)

// Use acquires a resource, lends it to the callback, and releases it on
// every exit path: normal return, error return, or panic in the callback
// (the panic is re-raised after release). A release failure is joined with
// the callback's error so neither is lost.
func Use[R, A any](
	acquire func() (R, error),
	release func(R) error,
	use func(R) (A, error),
) (result A, err error) {
	resource, err := acquire()
	if err != nil {
		return result, fmt.Errorf("resource: acquire failed: %w", err)
	}
	defer func() {
		releaseErr := release(resource)
		if releaseErr != nil {
			err = errors.Join(err, fmt.Errorf("resource: release failed: %w", releaseErr))
		}
	}()
	return use(resource)
}

// UseMaybe is the variant whose outcome channel is the optional-value
// container: acquisition failure surfaces as None instead of an error, and
// the callback is total. Release still runs whenever acquisition succeeded,
// including when the callback panics.
func UseMaybe[R, A any](
	acquire func() maybe.Maybe[R],
	release func(R),
	use func(R) A,
) maybe.Maybe[A] {
	return maybe.Bind(acquire(), func(resource R) maybe.Maybe[A] {
		defer release(resource)
		return maybe.JustOf(use(resource))
	})
}
