package rosidlruntime

// Message is implemented by every generated message type.
type Message interface {
	// TypeName returns the fully qualified interface type name, for
	// example "sensor_interfaces/msg/PointCloud".
	TypeName() string
}
