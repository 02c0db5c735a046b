package seq

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"iter"
	"math/bits"
	"slices"
	"unsafe"
)

// Sequence is an unbounded sequence of T.
//
// The layout of a concrete Sequence[T] is identical to the corresponding
// sequence struct generated by the C message generator. For instance,
// Sequence[Int32] matches std_msgs__msg__Int32__Sequence. The field order
// below is part of that contract and must not change: data pointer,
// logical size, allocated capacity.
//
// The zero value is the empty sequence; no allocation occurs until a
// sized constructor or an extend operation runs.
type Sequence[T any] struct {
	data     *T
	size     uintptr
	capacity uintptr
}

// Alloc is the allocation backend capability implemented by every element
// type that can be stored in a Sequence. Scalar types bridge to the
// runtime support allocator; generated composite types provide equivalent
// per-type implementations following the same contract.
//
// The receiver carries no state; implementations are invoked on the zero
// value of T and resolved statically through the [T Alloc[T]] constraint.
type Alloc[T any] interface {
	// InitSequence allocates a buffer for size elements and sets the
	// sequence's size and capacity to size. Reports failure if
	// allocation fails.
	InitSequence(s *Sequence[T], size int) bool

	// FiniSequence releases the buffer and any owned sub-resources of
	// each element. Must be safe to call on an empty sequence.
	FiniSequence(s *Sequence[T])

	// CopySequence deep-copies all elements from src into dst, growing
	// dst's buffer if its capacity is insufficient.
	CopySequence(src, dst *Sequence[T]) bool
}

// New creates a sequence of size default-valued elements.
//
// Panics if the backend reports an allocation failure; there is no safe
// recovery path from allocator exhaustion.
func New[T Alloc[T]](size int) Sequence[T] {
	var s Sequence[T]
	var backend T
	if !backend.InitSequence(&s, size) {
		panic(fmt.Sprintf("seq: initialization of sequence with %d elements failed", size))
	}
	return s
}

// FromSlice creates a sequence holding a deep copy of items, made through
// the backend's copy operation. The caller keeps ownership of items and of
// everything its elements own.
//
// Panics if the backend reports a copy failure, mirroring the New policy.
func FromSlice[T Alloc[T]](items []T) Sequence[T] {
	var src, out Sequence[T]
	if len(items) > 0 {
		src = Sequence[T]{data: &items[0], size: uintptr(len(items)), capacity: uintptr(len(items))}
	}
	var backend T
	if !backend.CopySequence(&src, &out) {
		panic(fmt.Sprintf("seq: copying %d elements into a new sequence failed", len(items)))
	}
	return out
}

// Of creates a sequence from a literal element list. It is the shorthand
// for sized construction followed by indexed assignment:
//
//	s := seq.Of[seq.Int32](3, 2, 1)
func Of[T Alloc[T]](elems ...T) Sequence[T] {
	s := New[T](len(elems))
	view := s.AsSlice()
	for i, e := range elems {
		view[i] = e
	}
	return s
}

// AsSlice borrows the contents as a slice of exactly Len elements.
// Mutation through the slice is permitted and never reallocates.
func (s *Sequence[T]) AsSlice() []T {
	if s.data == nil {
		return nil
	}
	return unsafe.Slice(s.data, s.size)
}

// Len returns the logical element count.
func (s *Sequence[T]) Len() int { return int(s.size) }

// Cap returns the number of elements the buffer can hold without
// reallocation.
func (s *Sequence[T]) Cap() int { return int(s.capacity) }

// IsEmpty reports whether the sequence contains no elements.
func (s *Sequence[T]) IsEmpty() bool { return s.size == 0 }

func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.AsSlice())
}

// at returns a pointer to element i. The caller keeps i < size.
func (s *Sequence[T]) at(i uintptr) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(s.data), i*unsafe.Sizeof(zero)))
}

// Fini releases the sequence's buffer and any owned sub-resources of its
// elements, exactly once. The sequence is reset to the empty state, so a
// second Fini is a no-op.
func Fini[T Alloc[T]](s *Sequence[T]) {
	var backend T
	backend.FiniSequence(s)
}

// Clone returns a deep copy of s.
//
// Panics if the backend reports a copy failure, mirroring the New policy.
func Clone[T Alloc[T]](s *Sequence[T]) Sequence[T] {
	var out Sequence[T]
	var backend T
	if !backend.CopySequence(s, &out) {
		panic("seq: cloning sequence failed")
	}
	return out
}

// CopyInto deep-copies src into dst through the backend, growing dst as
// needed. It reports failure instead of panicking and is intended for
// generated composite copy implementations.
func CopyInto[T Alloc[T]](src, dst *Sequence[T]) bool {
	var backend T
	return backend.CopySequence(src, dst)
}

// resize moves the sequence into a fresh buffer of newSize elements.
// Existing elements are moved by value, in order; elements beyond newSize
// are finalized with the remainder of the old buffer.
func resize[T Alloc[T]](s *Sequence[T], newSize int) {
	if newSize == s.Len() {
		return
	}
	old := *s
	*s = New[T](newSize)
	view := s.AsSlice()
	it := Consume(&old)
	for i := 0; i < newSize; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		view[i] = v
	}
	it.Close()
}

// Extend appends every element produced by items, preserving existing
// contents and relative order. Capacity grows to the next power of two
// whenever the buffer is full, and the sequence is shrunk to the exact
// final element count afterwards: no spare capacity is retained past an
// extend call.
//
// For sources of known length, ExtendSlice grows exactly once instead.
func Extend[T Alloc[T]](s *Sequence[T], items iter.Seq[T]) {
	cur := s.Len()
	for item := range items {
		if cur == s.Len() {
			resize(s, nextPowerOfTwo(s.Len()+1))
		}
		*s.at(uintptr(cur)) = item
		cur++
	}
	if cur < s.Len() {
		resize(s, cur)
	}
}

// ExtendSlice appends items, growing the buffer once to the exact final
// size.
func ExtendSlice[T Alloc[T]](s *Sequence[T], items []T) {
	if len(items) == 0 {
		return
	}
	cur := s.Len()
	resize(s, cur+len(items))
	copy(s.AsSlice()[cur:], items)
}

// Equal reports whether a and b have equal size and pairwise-equal
// elements in the same order. Capacities never participate.
func Equal[T comparable](a, b *Sequence[T]) bool {
	return slices.Equal(a.AsSlice(), b.AsSlice())
}

// Compare orders a and b lexicographically by element.
func Compare[T cmp.Ordered](a, b *Sequence[T]) int {
	return slices.Compare(a.AsSlice(), b.AsSlice())
}

// Hash returns a hash of the element view, consistent with Equal: equal
// sequences hash identically under the same seed regardless of capacity.
func Hash[T comparable](seed maphash.Seed, s *Sequence[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, v := range s.AsSlice() {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
