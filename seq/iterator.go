package seq

import "iter"

// Iterator is a by-value, single-pass iterator over a consumed sequence.
//
// Each Next transfers one element out of the buffer and neutralizes its
// slot with the zero value, so that closing a partially-drained iterator
// finalizes only the elements that were never extracted. Once exhausted
// the iterator stays exhausted.
type Iterator[T Alloc[T]] struct {
	seq Sequence[T]
	idx uintptr
}

// Consume takes ownership of s and returns an iterator over its elements.
// s is reset to the empty sequence; responsibility for finalization moves
// to the iterator.
func Consume[T Alloc[T]](s *Sequence[T]) *Iterator[T] {
	it := &Iterator[T]{seq: *s}
	*s = Sequence[T]{}
	return it
}

// Next yields the next element by value, or reports false when the
// iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it.idx >= it.seq.size {
		return zero, false
	}
	p := it.seq.at(it.idx)
	elem := *p
	// The slot's ownership has been transferred out; Close must not
	// finalize it again.
	*p = zero
	it.idx++
	return elem, true
}

// Len returns the exact number of elements remaining.
func (it *Iterator[T]) Len() int {
	return int(it.seq.size - it.idx)
}

// Close finalizes the not-yet-extracted remainder of the sequence.
// Closing an exhausted or already-closed iterator is a no-op.
func (it *Iterator[T]) Close() {
	var backend T
	backend.FiniSequence(&it.seq)
	it.idx = 0
}

// Values adapts the iterator for range-over-func loops. The caller still
// owns the iterator and should Close it if the loop may stop early.
func (it *Iterator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Drain consumes s and returns a one-shot range function over its
// elements, closing the underlying iterator when the loop finishes or
// stops early.
func Drain[T Alloc[T]](s *Sequence[T]) iter.Seq[T] {
	it := Consume(s)
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
