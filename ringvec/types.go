// Package ringvec defines the RingVec container, its Allocator capability,
// functional options, and sentinel errors.
package ringvec

import "errors"

// DefaultCapacity is the capacity of the first allocated block when a
// vector grows from empty, and the initial reservation made by Collect.
const DefaultCapacity = 10

// Sentinel errors for ringvec operations.
var (
	// ErrEmpty indicates Front, Back, PopFront or PopBack was called on an
	// empty vector.
	ErrEmpty = errors.New("ringvec: empty vector")
)

// Allocator supplies raw storage blocks to a RingVec.
//
// The contract is symmetric: Deallocate must be called with the exact
// slot count n that the block was Allocated with, and every allocated
// block is deallocated at most once. Allocate returns zeroed slots.
// A failed Allocate must leave nothing to release.
//
// The default allocator is backed by make and never fails; custom
// implementations may meter allocations or inject failures (see the
// package tests for a counting/failing allocator).
type Allocator[T any] interface {
	// Allocate returns a block of n zeroed slots, or an error.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate.
	// n must equal the slot count passed to the matching Allocate call.
	Deallocate(block []T, n int)
}

// heapAllocator is the default Allocator: plain make-backed storage,
// reclaimed by the garbage collector. It never fails.
type heapAllocator[T any] struct{}

func (heapAllocator[T]) Allocate(n int) ([]T, error) { return make([]T, n), nil }

func (heapAllocator[T]) Deallocate([]T, int) {}

// Option configures a RingVec before first use.
type Option[T any] func(*RingVec[T])

// WithAllocator replaces the default heap allocator.
// Must be supplied at construction, before any storage is allocated.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *RingVec[T]) { v.buf.alloc = a }
}
