package dlist

import (
	"fmt"
	"strings"
)

// Node is a single element of a List. Its links are package-private:
// callers navigate with Next/Prev and mutate only the stored value.
type Node[T any] struct {
	value T
	next  *Node[T]
	prev  *Node[T]
}

// Value returns the stored value. Complexity: O(1).
func (n *Node[T]) Value() T {
	return n.value
}

// Ref returns a pointer to the stored value for in-place mutation.
// Complexity: O(1).
func (n *Node[T]) Ref() *T {
	return &n.value
}

// SetValue replaces the stored value. Complexity: O(1).
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Next returns the following node, or nil at the back. Complexity: O(1).
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, or nil at the front. Complexity: O(1).
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly linked list. The zero value is an empty list ready
// to use.
type List[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// New returns an empty list. Complexity: O(1).
func New[T any]() *List[T] {
	return &List[T]{}
}

// Empty reports whether the list has no nodes. Complexity: O(1).
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Len returns the number of nodes. Complexity: O(1).
func (l *List[T]) Len() int {
	return l.size
}

// First returns the front node, or nil when empty. Complexity: O(1).
func (l *List[T]) First() *Node[T] {
	return l.first
}

// Last returns the back node, or nil when empty. Complexity: O(1).
func (l *List[T]) Last() *Node[T] {
	return l.last
}

// PushFront prepends a node holding v and returns it. Complexity: O(1).
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{value: v}
	if l.first == nil {
		l.first, l.last = n, n
	} else {
		n.next = l.first
		l.first.prev = n
		l.first = n
	}
	l.size++

	return n
}

// PushBack appends a node holding v and returns it. Complexity: O(1).
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{value: v}
	if l.last == nil {
		l.first, l.last = n, n
	} else {
		n.prev = l.last
		l.last.next = n
		l.last = n
	}
	l.size++

	return n
}

// Find returns the first node whose value satisfies match, scanning
// front to back, or nil if none does. Complexity: O(n).
func (l *List[T]) Find(match func(T) bool) *Node[T] {
	for n := l.first; n != nil; n = n.next {
		if match(n.value) {
			return n
		}
	}

	return nil
}

// InsertBefore links a new node holding v immediately before n and
// returns it. A nil n is a no-op returning nil. n must belong to l.
// Complexity: O(1).
func (l *List[T]) InsertBefore(n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}
	if n == l.first {
		return l.PushFront(v)
	}
	fresh := &Node[T]{value: v, next: n, prev: n.prev}
	n.prev.next = fresh
	n.prev = fresh
	l.size++

	return fresh
}

// InsertAfter links a new node holding v immediately after n and
// returns it. A nil n is a no-op returning nil. n must belong to l.
// Complexity: O(1).
func (l *List[T]) InsertAfter(n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}
	if n == l.last {
		return l.PushBack(v)
	}
	fresh := &Node[T]{value: v, next: n.next, prev: n}
	n.next.prev = fresh
	n.next = fresh
	l.size++

	return fresh
}

// Erase unlinks n from the list. A nil n is a no-op. n must belong to
// l; erasing a node twice is a caller error. Complexity: O(1).
func (l *List[T]) Erase(n *Node[T]) {
	if n == nil {
		return
	}
	if n.prev == nil {
		l.first = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.last = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	l.size--
}

// Clear unlinks every node. Complexity: O(1) — detached nodes are left
// to the garbage collector.
func (l *List[T]) Clear() {
	l.first = nil
	l.last = nil
	l.size = 0
}

// Clone returns a deep copy of the list: fresh nodes, same values in
// the same order. Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := l.first; n != nil; n = n.next {
		c.PushBack(n.value)
	}

	return c
}

// String implements fmt.Stringer: values front to back, space-separated.
// Complexity: O(n).
func (l *List[T]) String() string {
	var sb strings.Builder
	for n := l.first; n != nil; n = n.next {
		if n != l.first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.value)
	}

	return sb.String()
}
