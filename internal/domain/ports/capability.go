package ports

// Capability is the result of probing an optional dependency: either an
// available handle or the reason it could not be obtained.
type Capability[T any] struct {
	handle    T
	reason    string
	available bool
}

// Available wraps a usable handle.
func Available[T any](handle T) Capability[T] {
	return Capability[T]{handle: handle, available: true}
}

// Unavailable records why a dependency could not be obtained.
func Unavailable[T any](reason string) Capability[T] {
	return Capability[T]{reason: reason}
}

// Get returns the handle and whether it is available.
func (c Capability[T]) Get() (T, bool) {
	return c.handle, c.available
}

// Reason explains an unavailable capability. Empty when available.
func (c Capability[T]) Reason() string {
	return c.reason
}
