package seq

// Scalar element types.
//
// Each IDL scalar gets a defined Go type so the allocation backend can be
// attached to it; the underlying representation is unchanged, so buffers
// of these types are byte-compatible with the C-generated ones. These
// mirror the primitive sequence support of the runtime support library
// (rosidl_runtime_c/primitives_sequence_functions). Long double is not
// representable in Go and is skipped, as in the other bindings.

type (
	Bool    bool
	Float32 float32
	Float64 float64
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
)

// Byte is the IDL octet type, an alias of Uint8.
type Byte = Uint8

// initPrimitive allocates the buffer and zero-fills it. The foreign
// allocation routine does not guarantee zeroed memory, and default-valued
// scalar semantics require it.
func initPrimitive[T any](s *Sequence[T], size int) bool {
	if !InitRaw(s, size) {
		return false
	}
	clear(s.AsSlice())
	return true
}

func (Bool) InitSequence(s *Sequence[Bool], size int) bool { return initPrimitive(s, size) }
func (Bool) FiniSequence(s *Sequence[Bool])                { FiniRaw(s, nil) }
func (Bool) CopySequence(src, dst *Sequence[Bool]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Float32) InitSequence(s *Sequence[Float32], size int) bool { return initPrimitive(s, size) }
func (Float32) FiniSequence(s *Sequence[Float32])                { FiniRaw(s, nil) }
func (Float32) CopySequence(src, dst *Sequence[Float32]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Float64) InitSequence(s *Sequence[Float64], size int) bool { return initPrimitive(s, size) }
func (Float64) FiniSequence(s *Sequence[Float64])                { FiniRaw(s, nil) }
func (Float64) CopySequence(src, dst *Sequence[Float64]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Int8) InitSequence(s *Sequence[Int8], size int) bool { return initPrimitive(s, size) }
func (Int8) FiniSequence(s *Sequence[Int8])                { FiniRaw(s, nil) }
func (Int8) CopySequence(src, dst *Sequence[Int8]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Int16) InitSequence(s *Sequence[Int16], size int) bool { return initPrimitive(s, size) }
func (Int16) FiniSequence(s *Sequence[Int16])                { FiniRaw(s, nil) }
func (Int16) CopySequence(src, dst *Sequence[Int16]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Int32) InitSequence(s *Sequence[Int32], size int) bool { return initPrimitive(s, size) }
func (Int32) FiniSequence(s *Sequence[Int32])                { FiniRaw(s, nil) }
func (Int32) CopySequence(src, dst *Sequence[Int32]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Int64) InitSequence(s *Sequence[Int64], size int) bool { return initPrimitive(s, size) }
func (Int64) FiniSequence(s *Sequence[Int64])                { FiniRaw(s, nil) }
func (Int64) CopySequence(src, dst *Sequence[Int64]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Uint8) InitSequence(s *Sequence[Uint8], size int) bool { return initPrimitive(s, size) }
func (Uint8) FiniSequence(s *Sequence[Uint8])                { FiniRaw(s, nil) }
func (Uint8) CopySequence(src, dst *Sequence[Uint8]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Uint16) InitSequence(s *Sequence[Uint16], size int) bool { return initPrimitive(s, size) }
func (Uint16) FiniSequence(s *Sequence[Uint16])                { FiniRaw(s, nil) }
func (Uint16) CopySequence(src, dst *Sequence[Uint16]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Uint32) InitSequence(s *Sequence[Uint32], size int) bool { return initPrimitive(s, size) }
func (Uint32) FiniSequence(s *Sequence[Uint32])                { FiniRaw(s, nil) }
func (Uint32) CopySequence(src, dst *Sequence[Uint32]) bool    { return CopyRaw(src, dst, nil, nil) }

func (Uint64) InitSequence(s *Sequence[Uint64], size int) bool { return initPrimitive(s, size) }
func (Uint64) FiniSequence(s *Sequence[Uint64])                { FiniRaw(s, nil) }
func (Uint64) CopySequence(src, dst *Sequence[Uint64]) bool    { return CopyRaw(src, dst, nil, nil) }
