package seq

import (
	"unsafe"

	"github.com/rosmesh/rosidl-runtime/seq/internal/cheap"
)

// Backend support for generated code.
//
// The three functions below carry the buffer management shared by every
// Alloc implementation. A generated composite type plugs its element
// hooks into FiniRaw and CopyRaw; scalar types pass nil hooks and get
// plain byte-level behavior.

// InitRaw allocates a zeroed buffer for size elements and sets the
// sequence's size and capacity to size. Any previous value of s is
// overwritten without finalization.
func InitRaw[T any](s *Sequence[T], size int) bool {
	if s == nil || size < 0 {
		return false
	}
	*s = Sequence[T]{}
	if size == 0 {
		return true
	}
	var zero T
	total := uintptr(size) * unsafe.Sizeof(zero)
	if total == 0 {
		// Zero-sized element type; a one-byte buffer keeps data non-nil
		// for size > 0, as the C allocator does for malloc(0).
		total = 1
	}
	p := cheap.Alloc(total)
	if p == nil {
		return false
	}
	s.data = (*T)(p)
	s.size = uintptr(size)
	s.capacity = uintptr(size)
	return true
}

// FiniRaw releases the sequence's buffer, first running finiElem (when
// non-nil) over each of the size elements. Safe on the empty sequence.
// The sequence is reset to the empty state so the release happens exactly
// once.
func FiniRaw[T any](s *Sequence[T], finiElem func(*T)) {
	if s == nil {
		return
	}
	if s.data == nil {
		*s = Sequence[T]{}
		return
	}
	if finiElem != nil {
		for i := uintptr(0); i < s.size; i++ {
			finiElem(s.at(i))
		}
	}
	cheap.Free(unsafe.Pointer(s.data))
	*s = Sequence[T]{}
}

// CopyRaw copies all elements from src into dst, reallocating dst's
// buffer when its capacity is insufficient. When copyElem is nil the
// element bytes are copied directly; otherwise copyElem deep-copies each
// element into its (zero-valued or previously copied) destination slot.
// A copy that shrinks dst leaves surplus elements behind; finiElem (when
// non-nil) is run over them before the size drops so their owned
// resources are released rather than orphaned.
func CopyRaw[T any](src, dst *Sequence[T], copyElem func(in, out *T) bool, finiElem func(*T)) bool {
	if src == nil || dst == nil {
		return false
	}
	var zero T
	n := src.size
	if dst.capacity < n {
		total := n * unsafe.Sizeof(zero)
		if total == 0 {
			total = 1
		}
		p := cheap.Realloc(unsafe.Pointer(dst.data), total)
		if p == nil {
			return false
		}
		dst.data = (*T)(p)
		dst.capacity = n
	}
	if finiElem != nil {
		for i := n; i < dst.size; i++ {
			finiElem(dst.at(i))
		}
	}
	dst.size = n
	if n == 0 {
		return true
	}
	if copyElem == nil {
		copy(dst.AsSlice(), src.AsSlice())
		return true
	}
	for i := uintptr(0); i < n; i++ {
		if !copyElem(src.at(i), dst.at(i)) {
			return false
		}
	}
	return true
}
