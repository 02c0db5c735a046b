// Package builtin contains the builtin interface types in the shape the
// message generator emits them: plain structs matching the C layout, plus
// per-type sequence allocation backends.
package builtin

import "github.com/rosmesh/rosidl-runtime/seq"

// Time mirrors builtin_interfaces/msg/Time.
type Time struct {
	Sec     int32
	Nanosec uint32
}

func (Time) TypeName() string { return "builtin_interfaces/msg/Time" }

func (Time) InitSequence(s *seq.Sequence[Time], size int) bool {
	return seq.InitRaw(s, size)
}

func (Time) FiniSequence(s *seq.Sequence[Time]) {
	seq.FiniRaw(s, nil)
}

func (Time) CopySequence(src, dst *seq.Sequence[Time]) bool {
	return seq.CopyRaw(src, dst, nil, nil)
}

// Duration mirrors builtin_interfaces/msg/Duration.
type Duration struct {
	Sec     int32
	Nanosec uint32
}

func (Duration) TypeName() string { return "builtin_interfaces/msg/Duration" }

func (Duration) InitSequence(s *seq.Sequence[Duration], size int) bool {
	return seq.InitRaw(s, size)
}

func (Duration) FiniSequence(s *seq.Sequence[Duration]) {
	seq.FiniRaw(s, nil)
}

func (Duration) CopySequence(src, dst *seq.Sequence[Duration]) bool {
	return seq.CopyRaw(src, dst, nil, nil)
}
