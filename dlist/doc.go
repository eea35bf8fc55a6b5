// Package dlist provides a generic doubly linked list with node-level
// insertion and erasure by pointer.
//
// What
//
//   - List[T] owns a chain of Node[T] values linked in both directions.
//   - PushFront, PushBack, InsertBefore and InsertAfter return the new
//     *Node so callers can keep handles for later O(1) erasure.
//   - Erase unlinks a node given its pointer; Find locates the first
//     node matching a predicate.
//   - Nodes expose read/write access to their value and read-only
//     navigation (Next/Prev); the links themselves are owned by the
//     list and cannot be rewired from outside.
//
// Node pointers remain valid until the node is erased or the list is
// cleared — the list never relocates nodes. Passing a node from one
// list to another list's methods is a caller error with undefined
// results.
//
// Complexity (n = length)
//
//   - PushFront/PushBack/InsertBefore/InsertAfter/Erase(node): O(1)
//   - Find/Clone/String: O(n)
//   - Len/Empty/First/Last: O(1)
//
// The list is not safe for concurrent use.
package dlist
