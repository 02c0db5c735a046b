// Package seq implements the dynamic sequence containers used inside
// generated message structs.
//
// A Sequence[T] has the same memory layout as the corresponding struct
// emitted by the C message generator (a data pointer followed by the
// logical size and the allocated capacity), so a populated value crosses
// the middleware boundary by reinterpreting memory, without copying.
//
// All buffer management is delegated to a per-element-type allocation
// backend, the Alloc[T] capability. Scalar element types (Int32, Float64,
// Bool, ...) are defined in this package; generated composite types
// implement the same three operations, typically by delegating to InitRaw,
// FiniRaw and CopyRaw.
//
// Operations that need the backend are package-level generic functions
// constrained by [T Alloc[T]], which resolves the implementation
// statically:
//
//	list := seq.New[seq.Int32](3)
//	v := list.AsSlice()
//	v[0], v[1], v[2] = 3, 2, 1
//	list = seq.Of[seq.Int32](3, 2, 1) // equivalent literal shorthand
//	defer seq.Fini(&list)
//
// Bounded[T] wraps a Sequence[T] with a maximum logical length, enforced
// at construction and on every mutation. Consume produces a by-value
// iterator that transfers element ownership out of the buffer.
//
// Sequences are plain value types with exclusive-ownership semantics and
// no internal synchronization; concurrent use of a single sequence must be
// synchronized externally.
package seq
