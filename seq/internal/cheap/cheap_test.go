package cheap

import (
	"testing"
	"unsafe"
)

func TestAllocZeroesAndPins(t *testing.T) {
	base := Live()

	p := Alloc(8)
	if p == nil {
		t.Fatal("Alloc(8) returned nil")
	}
	if Live() != base+1 {
		t.Fatalf("live = %d, want %d", Live(), base+1)
	}
	if Size(p) != 8 {
		t.Errorf("size = %d, want 8", Size(p))
	}
	for i, b := range unsafe.Slice((*byte)(p), 8) {
		if b != 0 {
			t.Errorf("byte %d = %d, want 0", i, b)
		}
	}
	Free(p)
}

func TestAllocZeroLength(t *testing.T) {
	if p := Alloc(0); p != nil {
		t.Errorf("Alloc(0) = %v, want nil", p)
	}
}

func TestFreeIsExactlyOnce(t *testing.T) {
	base := Live()
	p := Alloc(4)

	if !Free(p) {
		t.Error("first free should remove the pin")
	}
	if Free(p) {
		t.Error("second free should be a no-op")
	}
	if Free(nil) {
		t.Error("freeing nil should be a no-op")
	}
	if Live() != base {
		t.Errorf("live = %d, want %d", Live(), base)
	}
}

func TestReallocPreservesContents(t *testing.T) {
	p := Alloc(4)
	copy(unsafe.Slice((*byte)(p), 4), []byte{1, 2, 3, 4})

	q := Realloc(p, 8)
	if q == nil {
		t.Fatal("grow returned nil")
	}
	got := unsafe.Slice((*byte)(q), 8)
	for i, want := range []byte{1, 2, 3, 4, 0, 0, 0, 0} {
		if got[i] != want {
			t.Errorf("byte %d = %d, want %d", i, got[i], want)
		}
	}
	if Size(q) != 8 {
		t.Errorf("size = %d, want 8", Size(q))
	}
	Free(q)
}

func TestReallocShrinkKeepsBuffer(t *testing.T) {
	p := Alloc(8)
	if q := Realloc(p, 2); q != p {
		t.Errorf("shrink moved the buffer: %v != %v", q, p)
	}
	if Size(p) != 8 {
		t.Errorf("size = %d, want 8", Size(p))
	}
	Free(p)
}

func TestReallocNilAllocates(t *testing.T) {
	p := Realloc(nil, 4)
	if p == nil {
		t.Fatal("Realloc(nil, 4) returned nil")
	}
	Free(p)
}

func TestReallocUnknownPointer(t *testing.T) {
	var x byte
	if q := Realloc(unsafe.Pointer(&x), 4); q != nil {
		t.Errorf("realloc of an untracked pointer = %v, want nil", q)
	}
}
