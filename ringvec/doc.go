// Package ringvec provides a double-ended, random-access vector stored in
// a single circular buffer, with amortized O(1) insertion and removal at
// both ends and O(1) indexing.
//
// What
//
//   - RingVec[T] is a value container similar in spirit to a deque, but
//     backed by one contiguous block instead of segmented pages, so its
//     memory footprint stays compact.
//   - The block holds capacity+1 physical slots: the spare sentinel slot
//     lets the two cursors distinguish "empty" from "full" while size is
//     tracked separately.
//   - Storage is allocated lazily (a fresh RingVec owns no block) and
//     grows by doubling — max(10, 2*capacity) — only when full, which
//     keeps insertion amortized O(1).
//   - Popping, Resize and Clear shrink only logically: values are zeroed
//     so the garbage collector can reclaim what they referenced, but the
//     block itself is retained for reuse.
//   - Allocation goes through a pluggable Allocator capability with a
//     symmetric Allocate/Deallocate contract, so callers can meter,
//     limit, or fail allocations deterministically in tests.
//
// Iteration
//
//	Begin/End return a cyclic, bidirectional Iterator: advancing past the
//	physical end of the block folds to its start, retreating before the
//	start folds to its last slot. Values and Backward adapt the same
//	traversal to Go range-over-func loops. Iterators are positions, not
//	snapshots: any operation that reallocates the block (growth, Reserve)
//	invalidates them, and removing the element an iterator points at
//	leaves it dangling. Moving a RingVec keeps its block, so iterators
//	taken before MoveFrom still dereference and traverse the same values.
//
// Errors
//
//   - ErrEmpty — Front, Back, PopFront and PopBack on an empty vector.
//   - Allocator failures propagate unchanged from PushBack, PushFront,
//     Reserve, Resize, Collect and Clone; the vector is left exactly as
//     it was (strong guarantee).
//   - At performs no bounds checking by contract; an out-of-range index
//     is a caller bug, not a reported error.
//
// Concurrency
//
//	RingVec is deliberately not safe for concurrent use. It is a plain
//	in-memory container: guard it with your own synchronization when
//	shared across goroutines.
//
// Complexity (n = number of elements)
//
//   - PushBack/PushFront/PopBack/PopFront: amortized O(1); a growth step
//     relocates all n live elements.
//   - At/Front/Back/Len/Cap/Empty/Swap/MoveFrom: O(1).
//   - Clear/Resize/Clone/Of/Collect: O(n).
//
// Usage
//
//	v := ringvec.Of(2, 3, 4)
//	_ = v.PushFront(1)
//	_ = v.PushBack(5)
//	front, _ := v.Front() // *front == 1
//	for x := range v.Values() {
//	    fmt.Println(x) // 1 2 3 4 5
//	}
package ringvec
