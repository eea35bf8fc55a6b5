package ringvec

// Iterator is a cyclic position inside a RingVec's physical block.
//
// It is bidirectional: Next steps toward End, Prev steps toward Begin,
// and both fold around the physical block boundary. Dereferencing End,
// stepping Next past End or Prev before Begin is undefined behavior, as
// is comparing iterators taken from different vectors — Equal inspects
// positions only.
//
// An Iterator does not own the vector. It dangles once the referenced
// block is reallocated (growth, Reserve) or the element it points at is
// popped. It survives MoveFrom of the owning vector: the block itself
// changes hands, not addresses, and stepping needs only the block.
type Iterator[T any] struct {
	pos     int
	storage []T // the physical block, pinned independently of the owner
}

// Ref returns a pointer to the element at the iterator's position.
// Complexity: O(1).
func (it Iterator[T]) Ref() *T {
	return &it.storage[it.pos]
}

// Value returns the element at the iterator's position.
// Complexity: O(1).
func (it Iterator[T]) Value() T {
	return it.storage[it.pos]
}

// Next advances the iterator one position toward End, folding past the
// physical end of the block to its start. Complexity: O(1).
func (it *Iterator[T]) Next() {
	it.pos++
	if it.pos >= len(it.storage) {
		it.pos = 0
	}
}

// Prev retreats the iterator one position toward Begin, folding before
// the physical start of the block to its last slot. Complexity: O(1).
func (it *Iterator[T]) Prev() {
	it.pos--
	if it.pos < 0 {
		it.pos = len(it.storage) - 1
	}
}

// Equal reports whether both iterators reference the same slot.
// Positions only: iterators from different vectors must not be compared.
// Complexity: O(1).
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.pos == o.pos
}
