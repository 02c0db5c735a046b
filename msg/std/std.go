// Package std contains standard interface types in the shape the message
// generator emits them. The multi-array types nest sequences two levels
// deep, so their backends exercise the full composite contract: a parent's
// finalizer releases everything its elements own, transitively.
package std

import (
	"github.com/rosmesh/rosidl-runtime/seq"
)

// MultiArrayDimension mirrors std_interfaces/msg/MultiArrayDimension.
type MultiArrayDimension struct {
	Size   uint32
	Stride uint32
}

func (MultiArrayDimension) TypeName() string { return "std_interfaces/msg/MultiArrayDimension" }

func (MultiArrayDimension) InitSequence(s *seq.Sequence[MultiArrayDimension], size int) bool {
	return seq.InitRaw(s, size)
}

func (MultiArrayDimension) FiniSequence(s *seq.Sequence[MultiArrayDimension]) {
	seq.FiniRaw(s, nil)
}

func (MultiArrayDimension) CopySequence(src, dst *seq.Sequence[MultiArrayDimension]) bool {
	return seq.CopyRaw(src, dst, nil, nil)
}

// MultiArrayLayout mirrors std_interfaces/msg/MultiArrayLayout.
type MultiArrayLayout struct {
	Dim        seq.Sequence[MultiArrayDimension]
	DataOffset uint32
}

func (MultiArrayLayout) TypeName() string { return "std_interfaces/msg/MultiArrayLayout" }

func (MultiArrayLayout) InitSequence(s *seq.Sequence[MultiArrayLayout], size int) bool {
	return seq.InitRaw(s, size)
}

func (MultiArrayLayout) FiniSequence(s *seq.Sequence[MultiArrayLayout]) {
	seq.FiniRaw(s, (*MultiArrayLayout).Fini)
}

func (MultiArrayLayout) CopySequence(src, dst *seq.Sequence[MultiArrayLayout]) bool {
	return seq.CopyRaw(src, dst, func(in, out *MultiArrayLayout) bool {
		out.DataOffset = in.DataOffset
		return seq.CopyInto(&in.Dim, &out.Dim)
	}, (*MultiArrayLayout).Fini)
}

// Fini releases the resources owned by a single layout value.
func (m *MultiArrayLayout) Fini() {
	seq.Fini(&m.Dim)
}

// Int32MultiArray mirrors std_interfaces/msg/Int32MultiArray.
type Int32MultiArray struct {
	Layout MultiArrayLayout
	Data   seq.Sequence[seq.Int32]
}

func (Int32MultiArray) TypeName() string { return "std_interfaces/msg/Int32MultiArray" }

func (Int32MultiArray) InitSequence(s *seq.Sequence[Int32MultiArray], size int) bool {
	return seq.InitRaw(s, size)
}

func (Int32MultiArray) FiniSequence(s *seq.Sequence[Int32MultiArray]) {
	seq.FiniRaw(s, (*Int32MultiArray).Fini)
}

func (Int32MultiArray) CopySequence(src, dst *seq.Sequence[Int32MultiArray]) bool {
	return seq.CopyRaw(src, dst, func(in, out *Int32MultiArray) bool {
		out.Layout.DataOffset = in.Layout.DataOffset
		if !seq.CopyInto(&in.Layout.Dim, &out.Layout.Dim) {
			return false
		}
		return seq.CopyInto(&in.Data, &out.Data)
	}, (*Int32MultiArray).Fini)
}

// Fini releases the resources owned by a single message value.
func (m *Int32MultiArray) Fini() {
	seq.Fini(&m.Layout.Dim)
	seq.Fini(&m.Data)
}

// Clone returns a deep copy of the message.
func (m *Int32MultiArray) Clone() Int32MultiArray {
	return Int32MultiArray{
		Layout: MultiArrayLayout{
			Dim:        seq.Clone(&m.Layout.Dim),
			DataOffset: m.Layout.DataOffset,
		},
		Data: seq.Clone(&m.Data),
	}
}
