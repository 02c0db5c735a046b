package std

import (
	"testing"

	"github.com/rosmesh/rosidl-runtime/seq"
)

func newTestArray() Int32MultiArray {
	return Int32MultiArray{
		Layout: MultiArrayLayout{
			Dim: seq.Of(
				MultiArrayDimension{Size: 2, Stride: 6},
				MultiArrayDimension{Size: 3, Stride: 3},
			),
			DataOffset: 0,
		},
		Data: seq.Of[seq.Int32](1, 2, 3, 4, 5, 6),
	}
}

func TestInt32MultiArrayCloneIsDeep(t *testing.T) {
	arr := newTestArray()
	defer arr.Fini()

	dup := arr.Clone()
	defer dup.Fini()

	if !seq.Equal(&dup.Data, &arr.Data) {
		t.Fatalf("data = %v, want %v", dup.Data.AsSlice(), arr.Data.AsSlice())
	}
	if dup.Layout.Dim.Len() != 2 {
		t.Fatalf("dim len = %d, want 2", dup.Layout.Dim.Len())
	}

	dup.Layout.Dim.AsSlice()[0].Size = 99
	dup.Data.AsSlice()[0] = 99
	if arr.Layout.Dim.AsSlice()[0].Size != 2 || arr.Data.AsSlice()[0] != 1 {
		t.Error("mutating the clone changed the original")
	}
}

func TestInt32MultiArraySequenceFiniIsTransitive(t *testing.T) {
	arrays := seq.New[Int32MultiArray](1)
	view := arrays.AsSlice()
	view[0] = newTestArray()

	seq.Fini(&arrays)
	if !view[0].Layout.Dim.IsEmpty() || !view[0].Data.IsEmpty() {
		t.Error("nested sequences should be finalized with their parent")
	}
}

func TestInt32MultiArraySequenceCopyIsDeep(t *testing.T) {
	src := seq.New[Int32MultiArray](1)
	defer seq.Fini(&src)
	src.AsSlice()[0] = newTestArray()

	var dst seq.Sequence[Int32MultiArray]
	defer seq.Fini(&dst)
	if !seq.CopyInto(&src, &dst) {
		t.Fatal("copy failed")
	}

	dst.AsSlice()[0].Data.AsSlice()[0] = 42
	if src.AsSlice()[0].Data.AsSlice()[0] != 1 {
		t.Error("element copy shared a nested buffer")
	}
}
