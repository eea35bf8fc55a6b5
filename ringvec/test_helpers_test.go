package ringvec_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stash/ringvec"
)

// errNoMemory is the failure injected by trackingAllocator.
var errNoMemory = errors.New("tracking allocator: out of memory")

// trackingAllocator is an Allocator that counts every allocate and
// deallocate, records live blocks with their slot counts, and can fail
// the next allocation on demand. It enforces the symmetric contract:
// Deallocate must present a block it handed out, with the exact slot
// count it was allocated with.
type trackingAllocator[T any] struct {
	t *testing.T

	live         map[*T]int // first-slot pointer → allocated slot count
	allocs       int
	frees        int
	failedAllocs int
	failNext     bool
}

func newTrackingAllocator[T any](t *testing.T) *trackingAllocator[T] {
	t.Helper()

	return &trackingAllocator[T]{t: t, live: make(map[*T]int)}
}

func (a *trackingAllocator[T]) Allocate(n int) ([]T, error) {
	if a.failNext {
		a.failNext = false
		a.failedAllocs++

		return nil, errNoMemory
	}
	a.allocs++
	block := make([]T, n)
	a.live[&block[0]] = n

	return block, nil
}

func (a *trackingAllocator[T]) Deallocate(block []T, n int) {
	a.t.Helper()
	a.frees++
	key := &block[0]
	stored, ok := a.live[key]
	if !ok {
		a.t.Errorf("Deallocate of a block not allocated here (or freed twice)")

		return
	}
	if stored != n {
		a.t.Errorf("Deallocate slot count = %d; allocated with %d", n, stored)
	}
	delete(a.live, key)
}

// assertBalanced verifies that every block except the expected live
// ones has been returned, and allocate/deallocate counts agree.
func (a *trackingAllocator[T]) assertBalanced(expectedLive int) {
	a.t.Helper()
	if len(a.live) != expectedLive {
		a.t.Errorf("live blocks = %d; want %d", len(a.live), expectedLive)
	}
	if a.allocs-a.frees != expectedLive {
		a.t.Errorf("allocs-frees = %d; want %d", a.allocs-a.frees, expectedLive)
	}
}

// advance steps a copy of it forward by offset and returns it,
// the slow std::next analogue for cyclic iterators.
func advance[T any](it ringvec.Iterator[T], offset int) ringvec.Iterator[T] {
	for ; offset > 0; offset-- {
		it.Next()
	}

	return it
}

// retreat steps a copy of it backward by offset and returns it.
func retreat[T any](it ringvec.Iterator[T], offset int) ringvec.Iterator[T] {
	for ; offset > 0; offset-- {
		it.Prev()
	}

	return it
}

// checkTraversal asserts that indexing, forward iteration and backward
// iteration all observe want in logical order, and size never exceeds
// capacity.
func checkTraversal(t *testing.T, v *ringvec.RingVec[int], want []int) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d; want %d", v.Len(), len(want))
	}
	if v.Len() > v.Cap() {
		t.Errorf("Len() = %d exceeds Cap() = %d", v.Len(), v.Cap())
	}
	for i, x := range want {
		if got := *v.At(i); got != x {
			t.Errorf("At(%d) = %d; want %d", i, got, x)
		}
		if got := advance(v.Begin(), i).Value(); got != x {
			t.Errorf("advance(Begin,%d) = %d; want %d", i, got, x)
		}
		if got := retreat(v.End(), v.Len()-i).Value(); got != x {
			t.Errorf("retreat(End,%d) = %d; want %d", v.Len()-i, got, x)
		}
	}
	if !advance(v.Begin(), v.Len()).Equal(v.End()) {
		t.Errorf("advance(Begin, Len) != End")
	}
	if !retreat(v.End(), v.Len()).Equal(v.Begin()) {
		t.Errorf("retreat(End, Len) != Begin")
	}

	forward := make([]int, 0, v.Len())
	for x := range v.Values() {
		forward = append(forward, x)
	}
	backward := make([]int, 0, v.Len())
	for x := range v.Backward() {
		backward = append(backward, x)
	}
	for i := range want {
		if forward[i] != want[i] {
			t.Errorf("Values()[%d] = %d; want %d", i, forward[i], want[i])
		}
		if backward[len(want)-1-i] != want[i] {
			t.Errorf("Backward()[%d] = %d; want %d", len(want)-1-i, backward[len(want)-1-i], want[i])
		}
	}
}
