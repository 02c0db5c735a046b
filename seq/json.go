package seq

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// JSON codec glue for the in-process transport. Sequences encode as plain
// arrays; decoding goes through the allocation backend so decoded buffers
// have the same ownership semantics as constructed ones.

// MarshalJSON encodes the element view as a JSON array.
func (s Sequence[T]) MarshalJSON() ([]byte, error) {
	view := s.AsSlice()
	if view == nil {
		view = []T{}
	}
	return sonic.Marshal(view)
}

// UnmarshalJSON replaces the sequence's contents with the decoded array.
// The element type must carry an allocation backend; the previous buffer
// is finalized first.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := sonic.Unmarshal(data, &items); err != nil {
		return err
	}
	var zero T
	backend, ok := any(zero).(Alloc[T])
	if !ok {
		return fmt.Errorf("seq: element type %T has no allocation backend", zero)
	}
	backend.FiniSequence(s)
	if !backend.InitSequence(s, len(items)) {
		panic(fmt.Sprintf("seq: initialization of sequence with %d elements failed", len(items)))
	}
	copy(s.AsSlice(), items)
	return nil
}

// MarshalJSON encodes the element view as a JSON array; the bound is a
// type-level property on the foreign side and is not part of the payload.
func (b Bounded[T]) MarshalJSON() ([]byte, error) {
	return b.inner.MarshalJSON()
}

// UnmarshalJSON replaces the bounded sequence's contents, enforcing the
// receiver's bound. The target must have been constructed with its bound
// set (for instance by the enclosing message's default constructor).
func (b *Bounded[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := sonic.Unmarshal(data, &items); err != nil {
		return err
	}
	if len(items) > int(b.bound) {
		return &BoundsError{Len: len(items), Bound: int(b.bound)}
	}
	var zero T
	backend, ok := any(zero).(Alloc[T])
	if !ok {
		return fmt.Errorf("seq: element type %T has no allocation backend", zero)
	}
	backend.FiniSequence(&b.inner)
	if !backend.InitSequence(&b.inner, len(items)) {
		panic(fmt.Sprintf("seq: initialization of sequence with %d elements failed", len(items)))
	}
	copy(b.inner.AsSlice(), items)
	return nil
}
