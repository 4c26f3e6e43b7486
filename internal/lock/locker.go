// Package lock serializes work that must not interleave, such as the
// duplicate-check-then-insert sequence of employee creation.
package lock

import (
	"context"
	"errors"
)

// ErrTimeout is returned when a lock could not be obtained before the wait deadline.
var ErrTimeout = errors.New("lock wait timed out")

// Locker grants exclusive access per key.
type Locker interface {
	// Lock blocks until key is held or ctx/the wait timeout ends.
	// The returned func releases the lock and is safe to call once.
	Lock(ctx context.Context, key string) (func(), error)
}
