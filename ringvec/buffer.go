package ringvec

// buffer is the storage engine behind RingVec: it owns the physical
// block and treats it as a circle.
//
// The block always holds capacity+1 slots. Cursors begin and end are
// physical indices kept in [0, len(storage)): a push that fills the
// last physical slot folds end to 0 immediately. With the spare
// sentinel slot the cursors can never collide on a full buffer, so
// begin == end holds exactly when the buffer is empty; size is simply
// the live-element count.
//
// Invariant: slots inside the live region hold caller values; every
// other slot is zero. popSlot and clear re-zero slots on the way out
// so released elements never pin garbage-collected memory.
type buffer[T any] struct {
	storage []T // physical block, len == capacity+1, nil until first allocation
	begin   int // index of the first live element (meaningful when size > 0)
	end     int // one past the last live element, cyclically

	size     int
	capacity int

	alloc Allocator[T]
}

// wrapped reports whether the live region reaches around the physical
// end of the block, including ending exactly at it (end folded to 0).
func (b *buffer[T]) wrapped() bool {
	return b.begin > b.end
}

// allocator returns b.alloc, defaulting to the heap allocator so that
// a zero-value buffer is usable without construction.
func (b *buffer[T]) allocator() Allocator[T] {
	if b.alloc == nil {
		b.alloc = heapAllocator[T]{}
	}

	return b.alloc
}

// reserve grows capacity to at least n; it never shrinks and never
// touches live elements' logical values. On allocator failure the
// buffer is left completely unchanged (strong guarantee).
// Complexity: O(size) on growth, O(1) otherwise.
func (b *buffer[T]) reserve(n int) error {
	if n <= b.capacity {
		return nil
	}

	return b.reallocate(n)
}

// reallocate swaps the block for a fresh one of n+1 slots, relocating
// the live elements to the new block's start in logical order: when the
// live region wraps, the high piece [begin, len) is copied first, then
// the low piece [0, end). The old block is zeroed and returned to the
// allocator with the exact slot count it was allocated with.
// Precondition: n >= size.
func (b *buffer[T]) reallocate(n int) error {
	fresh, err := b.allocator().Allocate(n + 1)
	if err != nil {
		return err
	}

	if b.storage != nil {
		if b.wrapped() {
			copied := copy(fresh, b.storage[b.begin:])
			copy(fresh[copied:], b.storage[:b.end])
		} else {
			copy(fresh, b.storage[b.begin:b.end])
		}
		b.scrub()
		b.alloc.Deallocate(b.storage, len(b.storage))
	}

	b.storage = fresh
	b.begin = 0
	b.end = b.size
	b.capacity = n

	return nil
}

// grow doubles capacity (or bootstraps DefaultCapacity from zero).
func (b *buffer[T]) grow() error {
	if b.capacity == 0 {
		return b.reallocate(DefaultCapacity)
	}

	return b.reallocate(2 * b.capacity)
}

// pushBack appends v after the last live element, growing first when
// full. Failure to grow adds nothing. Amortized O(1).
func (b *buffer[T]) pushBack(v T) error {
	if b.size == b.capacity {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.placeBack(v)

	return nil
}

// pushFront prepends v before the first live element, growing first
// when full. Failure to grow adds nothing. Amortized O(1).
func (b *buffer[T]) pushFront(v T) error {
	if b.size == b.capacity {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.placeFront(v)

	return nil
}

// placeBack writes v into the free slot at end, folding the cursor
// eagerly so it never rests at len(storage) — otherwise draining from
// the front could leave an empty buffer with begin != end.
// Precondition: size < capacity.
func (b *buffer[T]) placeBack(v T) {
	b.storage[b.end] = v
	b.end++
	if b.end == len(b.storage) {
		b.end = 0
	}
	b.size++
}

// placeFront writes v into the next free slot before begin.
// Precondition: size < capacity.
func (b *buffer[T]) placeFront(v T) {
	if b.begin == 0 {
		b.begin = len(b.storage)
	}
	b.begin--
	b.storage[b.begin] = v
	b.size++
}

// popBack removes the last live element and returns it.
// The slot is zeroed. Calling popBack on an empty buffer is the
// caller's bug; RingVec rejects it before delegating. O(1).
func (b *buffer[T]) popBack() T {
	if b.end == 0 {
		b.end = len(b.storage)
	}
	b.end--
	v := b.storage[b.end]
	var zero T
	b.storage[b.end] = zero
	b.size--

	return v
}

// popFront removes the first live element and returns it.
// Same empty-buffer contract as popBack. O(1).
func (b *buffer[T]) popFront() T {
	v := b.storage[b.begin]
	var zero T
	b.storage[b.begin] = zero
	b.begin++
	if b.begin == len(b.storage) {
		b.begin = 0
	}
	b.size--

	return v
}

// at maps logical index x to its physical slot. No bounds checking:
// out-of-range x is undefined behavior by contract (in practice the
// slice bound check panics). O(1).
func (b *buffer[T]) at(x int) *T {
	if b.wrapped() && b.begin+x >= len(b.storage) {
		return &b.storage[x-(len(b.storage)-b.begin)]
	}

	return &b.storage[b.begin+x]
}

// resize changes size to n: zero values are appended at the back when
// growing, elements are popped from the back when shrinking.
// Reserves first when n exceeds capacity. O(|n - size|) plus the
// relocation cost of a reserve.
func (b *buffer[T]) resize(n int) error {
	if n > b.capacity {
		if err := b.reserve(n); err != nil {
			return err
		}
	}
	var zero T
	for b.size < n {
		b.placeBack(zero)
	}
	for b.size > n {
		b.popBack()
	}

	return nil
}

// clear zeroes every live slot (both pieces when the region wraps),
// resets the cursors to the block start, and sets size to 0.
// Capacity and the block itself are retained. O(size).
func (b *buffer[T]) clear() {
	b.scrub()
	b.begin = 0
	b.end = 0
	b.size = 0
}

// scrub zeroes the live region without touching cursors or size.
func (b *buffer[T]) scrub() {
	var zero T
	if b.wrapped() {
		for i := b.begin; i < len(b.storage); i++ {
			b.storage[i] = zero
		}
		for i := 0; i < b.end; i++ {
			b.storage[i] = zero
		}

		return
	}
	for i := b.begin; i < b.end; i++ {
		b.storage[i] = zero
	}
}

// release clears the buffer and hands the block back to the allocator,
// using the capacity-derived slot count the block was allocated with.
// The buffer is left empty with capacity 0, ready for reuse.
func (b *buffer[T]) release() {
	if b.storage == nil {
		return
	}
	b.clear()
	b.alloc.Deallocate(b.storage, len(b.storage))
	b.storage = nil
	b.capacity = 0
}

// moveFrom releases b's own block, then steals o's block, cursors and
// allocator, leaving o a valid empty buffer (o keeps its allocator so
// it remains usable). O(size) for the release, O(1) for the transfer.
func (b *buffer[T]) moveFrom(o *buffer[T]) {
	if b == o {
		return
	}
	b.release()
	b.storage = o.storage
	b.begin = o.begin
	b.end = o.end
	b.size = o.size
	b.capacity = o.capacity
	b.alloc = o.alloc

	o.storage = nil
	o.begin = 0
	o.end = 0
	o.size = 0
	o.capacity = 0
}
