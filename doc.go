// Package stash is a small playground of generic, in-memory containers —
// from a double-ended ring vector to linked lists, dense matrices and
// binary tries.
//
// 🚀 What is stash?
//
//	A compact, zero-dependency collection library built on Go generics:
//		• ringvec  — double-ended vector over a circular buffer:
//		  amortized O(1) push/pop at both ends, O(1) indexing,
//		  pluggable allocation strategy, cyclic bidirectional iterator
//		• dlist    — doubly linked list with node-level insert/erase
//		• matrix   — dense numeric matrix with scalar & matrix multiply
//		• bittrie  — binary trie keyed by bit sequences, with
//		  union/intersection under a user merge function
//
// ✨ Why choose stash?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable costs – every operation documents its complexity
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – unchecked fast paths are documented, checked
//     accessors return sentinel errors you can test with errors.Is
//
// The containers are single-threaded by contract: wrap them with your
// own synchronization if you share them across goroutines.
//
// Quick ASCII example:
//
//	ringvec storage (capacity 6, 7 physical slots, live region wraps):
//
//	    [ e5 e6 __ __ __ e3 e4 ]
//	            ^end     ^begin
//
// Dive into each package's doc.go for operation lists, complexity
// tables and worked examples.
//
//	go get github.com/katalvlaran/stash/ringvec
package stash
