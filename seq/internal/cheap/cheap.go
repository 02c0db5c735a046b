// Package cheap emulates the middleware's C heap for sequence buffers.
//
// Sequence data pointers are exchanged with foreign code as raw addresses,
// so every live buffer must stay pinned for as long as its address is out
// there. The package tracks each allocation in a table keyed by its base
// address; Free removes the pin exactly once.
package cheap

import (
	"sync"
	"unsafe"
)

// pinTable holds every live allocation. An entry keeps the backing byte
// slice reachable so the garbage collector never reclaims memory whose
// address may still be held by foreign code.
type pinTable struct {
	mu      sync.Mutex
	buffers map[unsafe.Pointer][]byte
}

var pins = pinTable{buffers: make(map[unsafe.Pointer][]byte)}

// Alloc returns a zeroed buffer of n bytes, or nil when n is 0.
func Alloc(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	buf := make([]byte, n)
	p := unsafe.Pointer(&buf[0])
	pins.mu.Lock()
	pins.buffers[p] = buf
	pins.mu.Unlock()
	return p
}

// Realloc grows the buffer at p to at least n bytes, preserving its
// contents. The extension is zero-filled. Shrinking requests keep the
// existing buffer. Realloc(nil, n) behaves like Alloc(n). Returns nil if
// p is not a live allocation.
func Realloc(p unsafe.Pointer, n uintptr) unsafe.Pointer {
	if p == nil {
		return Alloc(n)
	}
	pins.mu.Lock()
	old, ok := pins.buffers[p]
	pins.mu.Unlock()
	if !ok {
		return nil
	}
	if uintptr(len(old)) >= n {
		return p
	}
	buf := make([]byte, n)
	copy(buf, old)
	q := unsafe.Pointer(&buf[0])
	pins.mu.Lock()
	delete(pins.buffers, p)
	pins.buffers[q] = buf
	pins.mu.Unlock()
	return q
}

// Free unpins the buffer at p. Freeing nil or an address that is not (or
// no longer) a live allocation is a no-op; it reports whether a pin was
// actually removed.
func Free(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	pins.mu.Lock()
	_, ok := pins.buffers[p]
	delete(pins.buffers, p)
	pins.mu.Unlock()
	return ok
}

// Size returns the byte length of the live allocation at p, or 0.
func Size(p unsafe.Pointer) uintptr {
	pins.mu.Lock()
	defer pins.mu.Unlock()
	return uintptr(len(pins.buffers[p]))
}

// Live returns the number of pinned allocations.
func Live() int {
	pins.mu.Lock()
	defer pins.mu.Unlock()
	return len(pins.buffers)
}
