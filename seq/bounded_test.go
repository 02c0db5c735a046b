package seq

import (
	"errors"
	"slices"
	"testing"
)

func TestTryNewBounded(t *testing.T) {
	t.Run("within_bound", func(t *testing.T) {
		b, err := TryNewBounded[Int32](5, 3)
		if err != nil {
			t.Fatalf("TryNewBounded(5, 3) failed: %v", err)
		}
		defer FiniBounded(&b)
		if b.Len() != 3 || b.Bound() != 5 {
			t.Errorf("len/bound = %d/%d, want 3/5", b.Len(), b.Bound())
		}
	})

	t.Run("exceeds_bound", func(t *testing.T) {
		_, err := TryNewBounded[Int32](5, 6)
		var bounds *BoundsError
		if !errors.As(err, &bounds) {
			t.Fatalf("error = %v, want *BoundsError", err)
		}
		if bounds.Len != 6 || bounds.Bound != 5 {
			t.Errorf("error carries len/bound = %d/%d, want 6/5", bounds.Len, bounds.Bound)
		}
		want := "bounded sequence with upper bound 5 initialized with len 6"
		if got := err.Error(); got != want {
			t.Errorf("message = %q, want %q", got, want)
		}
	})
}

func TestBoundedFromSlice(t *testing.T) {
	t.Run("exact_capacity", func(t *testing.T) {
		src := []Int32{1, 2, 3, 4, 5}
		b, err := BoundedFromSlice(5, src)
		if err != nil {
			t.Fatalf("BoundedFromSlice failed: %v", err)
		}
		defer FiniBounded(&b)
		if !slices.Equal(b.AsSlice(), src) {
			t.Errorf("contents = %v, want %v", b.AsSlice(), src)
		}
	})

	t.Run("one_over_never_truncates", func(t *testing.T) {
		_, err := BoundedFromSlice(5, []Int32{1, 2, 3, 4, 5, 6})
		var bounds *BoundsError
		if !errors.As(err, &bounds) {
			t.Fatalf("error = %v, want *BoundsError", err)
		}
		if bounds.Len != 6 || bounds.Bound != 5 {
			t.Errorf("error carries len/bound = %d/%d, want 6/5", bounds.Len, bounds.Bound)
		}
	})
}

func TestBoundedExtendTruncates(t *testing.T) {
	b := BoundedOf[Int32](5, 3, 2, 1)
	defer FiniBounded(&b)

	if got := b.AsSlice(); !slices.Equal(got, []Int32{3, 2, 1}) {
		t.Fatalf("literal = %v, want [3 2 1]", got)
	}

	// Two more fit.
	ExtendBoundedSlice(&b, []Int32{9, 8})
	if got := b.AsSlice(); !slices.Equal(got, []Int32{3, 2, 1, 9, 8}) {
		t.Fatalf("after extend = %v, want [3 2 1 9 8]", got)
	}

	// At capacity every further element is discarded.
	ExtendBoundedSlice(&b, []Int32{7})
	if got := b.AsSlice(); !slices.Equal(got, []Int32{3, 2, 1, 9, 8}) {
		t.Errorf("extend past bound changed contents: %v", got)
	}
}

func TestBoundedExtendPartialTruncation(t *testing.T) {
	b := BoundedOf[Int32](4, 1, 2)
	defer FiniBounded(&b)

	// Only two of four incoming elements fit.
	ExtendBounded(&b, slices.Values([]Int32{3, 4, 5, 6}))
	if got := b.AsSlice(); !slices.Equal(got, []Int32{1, 2, 3, 4}) {
		t.Errorf("truncating extend = %v, want [1 2 3 4]", got)
	}
	if b.Len() != b.Bound() {
		t.Errorf("len = %d, want bound %d", b.Len(), b.Bound())
	}
}

func TestBoundedDelegatesToUnbounded(t *testing.T) {
	a := BoundedOf[Int32](5, 1, 2, 3)
	defer FiniBounded(&a)

	b := CloneBounded(&a)
	defer FiniBounded(&b)

	if !EqualBounded(&a, &b) {
		t.Error("clone should equal original")
	}
	if b.Bound() != 5 {
		t.Errorf("clone bound = %d, want 5", b.Bound())
	}

	b.AsSlice()[0] = 42
	if EqualBounded(&a, &b) {
		t.Error("mutating the clone should break equality")
	}
	if CompareBounded(&a, &b) >= 0 {
		t.Error("1 < 42 should order a before b")
	}

	// The unbounded view is the layout-compatible value.
	if got := a.Unbounded().Len(); got != 3 {
		t.Errorf("unbounded view len = %d, want 3", got)
	}
}

func TestBoundedConsume(t *testing.T) {
	b := BoundedOf[Int32](3, 1, 2, 3)
	it := ConsumeBounded(&b)
	defer it.Close()

	var got []Int32
	for v := range it.Values() {
		got = append(got, v)
	}
	if !slices.Equal(got, []Int32{1, 2, 3}) {
		t.Errorf("iteration = %v, want [1 2 3]", got)
	}
	if !b.IsEmpty() {
		t.Error("consumed bounded sequence should be empty")
	}
	if b.Bound() != 3 {
		t.Errorf("bound after consume = %d, want 3", b.Bound())
	}
}
