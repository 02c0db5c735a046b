// Package sensor contains sensor interface types in the shape the message
// generator emits them. PointCloud demonstrates the composite backend
// contract: its finalizer releases the nested sequences it owns, and its
// copy operation deep-copies them.
package sensor

import (
	"github.com/rosmesh/rosidl-runtime/seq"
)

// Point mirrors sensor_interfaces/msg/Point.
type Point struct {
	X float64
	Y float64
	Z float64
}

func (Point) TypeName() string { return "sensor_interfaces/msg/Point" }

func (Point) InitSequence(s *seq.Sequence[Point], size int) bool {
	return seq.InitRaw(s, size)
}

func (Point) FiniSequence(s *seq.Sequence[Point]) {
	seq.FiniRaw(s, nil)
}

func (Point) CopySequence(src, dst *seq.Sequence[Point]) bool {
	return seq.CopyRaw(src, dst, nil, nil)
}

// PointCloud mirrors sensor_interfaces/msg/PointCloud.
type PointCloud struct {
	Stamp       Stamp
	Points      seq.Sequence[Point]
	Intensities seq.Sequence[seq.Float32]
}

// Stamp is the sample timestamp, layout-identical to builtin Time.
type Stamp struct {
	Sec     int32
	Nanosec uint32
}

func (PointCloud) TypeName() string { return "sensor_interfaces/msg/PointCloud" }

func (PointCloud) InitSequence(s *seq.Sequence[PointCloud], size int) bool {
	return seq.InitRaw(s, size)
}

func (PointCloud) FiniSequence(s *seq.Sequence[PointCloud]) {
	seq.FiniRaw(s, (*PointCloud).Fini)
}

func (PointCloud) CopySequence(src, dst *seq.Sequence[PointCloud]) bool {
	return seq.CopyRaw(src, dst, func(in, out *PointCloud) bool {
		out.Stamp = in.Stamp
		if !seq.CopyInto(&in.Points, &out.Points) {
			return false
		}
		return seq.CopyInto(&in.Intensities, &out.Intensities)
	}, (*PointCloud).Fini)
}

// Fini releases the resources owned by a single message value.
func (m *PointCloud) Fini() {
	seq.Fini(&m.Points)
	seq.Fini(&m.Intensities)
}

// Clone returns a deep copy of the message.
func (m *PointCloud) Clone() PointCloud {
	return PointCloud{
		Stamp:       m.Stamp,
		Points:      seq.Clone(&m.Points),
		Intensities: seq.Clone(&m.Intensities),
	}
}

// Temperature mirrors sensor_interfaces/msg/Temperature.
type Temperature struct {
	Stamp   Stamp
	Celsius float64
}

func (Temperature) TypeName() string { return "sensor_interfaces/msg/Temperature" }

func (Temperature) InitSequence(s *seq.Sequence[Temperature], size int) bool {
	return seq.InitRaw(s, size)
}

func (Temperature) FiniSequence(s *seq.Sequence[Temperature]) {
	seq.FiniRaw(s, nil)
}

func (Temperature) CopySequence(src, dst *seq.Sequence[Temperature]) bool {
	return seq.CopyRaw(src, dst, nil, nil)
}
