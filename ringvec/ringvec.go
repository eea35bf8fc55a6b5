package ringvec

import (
	"fmt"
	"iter"
	"strings"
)

// RingVec is a double-ended vector over a circular buffer.
//
// The zero value is an empty vector using the default heap allocator.
// A RingVec must not be copied by assignment once it owns storage; use
// Clone for a deep copy, MoveFrom to transfer ownership, Swap to
// exchange two vectors.
type RingVec[T any] struct {
	buf buffer[T]
}

// New returns an empty RingVec. No storage is allocated until the
// first insertion or Reserve. Complexity: O(1).
func New[T any](opts ...Option[T]) *RingVec[T] {
	v := &RingVec[T]{}
	v.buf.alloc = heapAllocator[T]{}
	// Apply options
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Of builds a RingVec holding elems in order, reserving the exact final
// size up front so the block is allocated exactly once (the default
// heap allocator cannot fail). Complexity: O(len(elems)).
func Of[T any](elems ...T) *RingVec[T] {
	v := New[T]()
	_ = v.buf.reserve(len(elems))
	for _, e := range elems {
		v.buf.placeBack(e)
	}

	return v
}

// Collect builds a RingVec from a Go sequence. It reserves
// DefaultCapacity up front and may reallocate while draining seq,
// unlike Of, which sizes the block exactly. Allocator failures abort
// the drain and are returned unchanged.
// Complexity: O(n) for n yielded elements.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*RingVec[T], error) {
	v := New[T](opts...)
	if err := v.buf.reserve(DefaultCapacity); err != nil {
		return nil, err
	}
	for e := range seq {
		if err := v.buf.pushBack(e); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Len returns the number of live elements. Complexity: O(1).
func (v *RingVec[T]) Len() int {
	return v.buf.size
}

// Cap returns the number of elements the vector can hold before the
// next reallocation. Complexity: O(1).
func (v *RingVec[T]) Cap() int {
	return v.buf.capacity
}

// Empty reports whether the vector holds no elements. Complexity: O(1).
func (v *RingVec[T]) Empty() bool {
	return v.buf.size == 0
}

// PushBack appends val. A growth step may relocate all elements and
// invalidates every iterator; allocator failures are returned unchanged
// with the vector untouched. Amortized O(1).
func (v *RingVec[T]) PushBack(val T) error {
	return v.buf.pushBack(val)
}

// PushFront prepends val. Same growth and failure contract as PushBack.
// Amortized O(1).
func (v *RingVec[T]) PushFront(val T) error {
	return v.buf.pushFront(val)
}

// PopBack removes and returns the last element.
// Returns ErrEmpty on an empty vector. Iterators at the removed
// position and at End are invalidated; capacity is retained. O(1).
func (v *RingVec[T]) PopBack() (T, error) {
	if v.Empty() {
		var zero T
		return zero, ErrEmpty
	}

	return v.buf.popBack(), nil
}

// PopFront removes and returns the first element.
// Returns ErrEmpty on an empty vector. Begin iterators are
// invalidated; capacity is retained. O(1).
func (v *RingVec[T]) PopFront() (T, error) {
	if v.Empty() {
		var zero T
		return zero, ErrEmpty
	}

	return v.buf.popFront(), nil
}

// Front returns a pointer to the first element, or ErrEmpty. O(1).
func (v *RingVec[T]) Front() (*T, error) {
	if v.Empty() {
		return nil, ErrEmpty
	}

	return v.buf.at(0), nil
}

// Back returns a pointer to the last element, or ErrEmpty. O(1).
func (v *RingVec[T]) Back() (*T, error) {
	if v.Empty() {
		return nil, ErrEmpty
	}

	return v.buf.at(v.buf.size - 1), nil
}

// At returns a pointer to the element at logical index x.
// No bounds checking whatsoever: 0 <= x < Len() is the caller's
// contract, and breaking it panics rather than reporting an error.
// O(1).
func (v *RingVec[T]) At(x int) *T {
	return v.buf.at(x)
}

// Reserve grows capacity to at least n without changing the elements.
// It never shrinks. On allocator failure the vector is unchanged and
// the error is returned as-is. O(Len()) on growth.
func (v *RingVec[T]) Reserve(n int) error {
	return v.buf.reserve(n)
}

// Resize sets Len() to n: zero values are appended when growing,
// elements are dropped from the back when shrinking. May reallocate
// when n exceeds capacity. O(|n - Len()|).
func (v *RingVec[T]) Resize(n int) error {
	return v.buf.resize(n)
}

// Clear removes all elements. Capacity and the block are retained.
// O(Len()).
func (v *RingVec[T]) Clear() {
	v.buf.clear()
}

// Clone returns a deep copy holding the same values in independent
// storage, allocated exactly once at the source's exact size. The
// clone uses the source's allocator. O(Len()).
func (v *RingVec[T]) Clone() (*RingVec[T], error) {
	c := &RingVec[T]{}
	c.buf.alloc = v.buf.allocator()
	if err := c.buf.reserve(v.Len()); err != nil {
		return nil, err
	}
	for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
		c.buf.placeBack(it.Value())
	}

	return c, nil
}

// MoveFrom transfers o's block, cursors and allocator into v,
// releasing whatever v held before. o is left a valid empty vector.
// No allocation takes place, and iterators into o keep dereferencing
// to the same values, now owned by v. O(Len()) for the release of v's
// previous elements, O(1) for the transfer.
func (v *RingVec[T]) MoveFrom(o *RingVec[T]) {
	v.buf.moveFrom(&o.buf)
}

// Swap exchanges the contents of v and o via three moves.
// O(1): no reallocation, no element copies, cannot fail.
func (v *RingVec[T]) Swap(o *RingVec[T]) {
	var tmp RingVec[T]
	tmp.MoveFrom(v)
	v.MoveFrom(o)
	o.MoveFrom(&tmp)
}

// Begin returns an iterator at the first element (equal to End when the
// vector is empty). O(1).
func (v *RingVec[T]) Begin() Iterator[T] {
	return Iterator[T]{pos: v.buf.begin, storage: v.buf.storage}
}

// End returns the one-past-the-last iterator. Dereferencing it is
// undefined behavior. O(1).
func (v *RingVec[T]) End() Iterator[T] {
	return Iterator[T]{pos: v.buf.end, storage: v.buf.storage}
}

// Values yields the elements front to back for range-over-func loops.
// The vector must not be mutated during iteration.
func (v *RingVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the elements back to front for range-over-func loops.
// The vector must not be mutated during iteration.
func (v *RingVec[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		begin := v.Begin()
		for it := v.End(); !it.Equal(begin); {
			it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(Len()) for string construction.
func (v *RingVec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for e := range v.Values() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(']')

	return sb.String()
}
