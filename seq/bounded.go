package seq

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"iter"
)

// Bounded is a sequence with a maximum logical length.
//
// At runtime a bounded and an unbounded sequence share the same foreign
// representation; the bound is not part of the wire layout. Go has no
// value-parameterized generics, so the bound lives in a field here and is
// enforced on construction and every mutation. The layout-compatible part
// is the wrapped Sequence, exposed through Unbounded.
type Bounded[T any] struct {
	inner Sequence[T]
	bound uintptr
}

// BoundsError reports an attempt to construct or convert into a bounded
// sequence with a length exceeding its bound.
type BoundsError struct {
	Len   int
	Bound int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bounded sequence with upper bound %d initialized with len %d", e.Bound, e.Len)
}

// TryNewBounded creates a bounded sequence of size default-valued
// elements, failing with a BoundsError when size exceeds bound.
func TryNewBounded[T Alloc[T]](bound, size int) (Bounded[T], error) {
	if size > bound {
		return Bounded[T]{}, &BoundsError{Len: size, Bound: bound}
	}
	return Bounded[T]{inner: New[T](size), bound: uintptr(bound)}, nil
}

// NewBounded is TryNewBounded for callers that have already established
// size <= bound; a bounds violation panics.
func NewBounded[T Alloc[T]](bound, size int) Bounded[T] {
	b, err := TryNewBounded[T](bound, size)
	if err != nil {
		panic(err)
	}
	return b
}

// BoundedFromSlice creates a bounded sequence holding a copy of items.
// It never truncates: a source longer than bound fails with a BoundsError
// carrying the attempted length.
func BoundedFromSlice[T Alloc[T]](bound int, items []T) (Bounded[T], error) {
	b, err := TryNewBounded[T](bound, len(items))
	if err != nil {
		return Bounded[T]{}, err
	}
	copy(b.inner.AsSlice(), items)
	return b, nil
}

// BoundedOf creates a bounded sequence from a literal element list,
// panicking when the list exceeds the bound. It is the bounded form of Of:
//
//	b := seq.BoundedOf[seq.Int32](5, 3, 2, 1)
func BoundedOf[T Alloc[T]](bound int, elems ...T) Bounded[T] {
	b := NewBounded[T](bound, len(elems))
	view := b.inner.AsSlice()
	for i, e := range elems {
		view[i] = e
	}
	return b
}

// AsSlice borrows the contents as a slice of exactly Len elements.
func (b *Bounded[T]) AsSlice() []T { return b.inner.AsSlice() }

// Len returns the logical element count.
func (b *Bounded[T]) Len() int { return b.inner.Len() }

// Bound returns the maximum logical length.
func (b *Bounded[T]) Bound() int { return int(b.bound) }

// IsEmpty reports whether the sequence contains no elements.
func (b *Bounded[T]) IsEmpty() bool { return b.inner.IsEmpty() }

// Unbounded borrows the wrapped sequence, the layout-compatible value
// exchanged with foreign code. Callers must not grow it past the bound.
func (b *Bounded[T]) Unbounded() *Sequence[T] { return &b.inner }

func (b *Bounded[T]) String() string { return b.inner.String() }

// ExtendBounded appends at most Bound−Len elements from items and
// silently discards the rest. Exceeding the bound is not representable in
// the foreign contract, so the truncating append is intentional, unlike
// construction, which always fails instead of truncating.
func ExtendBounded[T Alloc[T]](b *Bounded[T], items iter.Seq[T]) {
	room := b.Bound() - b.Len()
	if room <= 0 {
		return
	}
	Extend(&b.inner, take(items, room))
}

// ExtendBoundedSlice is ExtendBounded for sources of known length.
func ExtendBoundedSlice[T Alloc[T]](b *Bounded[T], items []T) {
	room := b.Bound() - b.Len()
	if room <= 0 {
		return
	}
	if len(items) > room {
		items = items[:room]
	}
	ExtendSlice(&b.inner, items)
}

// FiniBounded releases the wrapped sequence exactly once.
func FiniBounded[T Alloc[T]](b *Bounded[T]) {
	Fini(&b.inner)
}

// CloneBounded returns a deep copy of b with the same bound.
func CloneBounded[T Alloc[T]](b *Bounded[T]) Bounded[T] {
	return Bounded[T]{inner: Clone(&b.inner), bound: b.bound}
}

// ConsumeBounded takes ownership of b's elements and returns an iterator
// over them. b is left empty with its bound intact.
func ConsumeBounded[T Alloc[T]](b *Bounded[T]) *Iterator[T] {
	return Consume(&b.inner)
}

// EqualBounded reports element-wise equality; bounds and capacities never
// participate.
func EqualBounded[T comparable](a, b *Bounded[T]) bool {
	return Equal(&a.inner, &b.inner)
}

// CompareBounded orders a and b lexicographically by element.
func CompareBounded[T cmp.Ordered](a, b *Bounded[T]) int {
	return Compare(&a.inner, &b.inner)
}

// HashBounded hashes the element view, consistent with EqualBounded.
func HashBounded[T comparable](seed maphash.Seed, b *Bounded[T]) uint64 {
	return Hash(seed, &b.inner)
}

func take[T any](items iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		left := n
		for v := range items {
			if !yield(v) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}
