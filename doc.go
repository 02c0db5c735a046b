// Package rosidlruntime provides the Go runtime support layer for a
// ROS-2-style message middleware.
//
// The library carries the pieces that generated message code and the
// middleware binding need at runtime: layout-compatible sequence
// containers, the per-type allocation backend contract, and the process
// lifecycle around contexts, nodes, publishers and subscriptions.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	rosidlruntime/       Root package with the Message contract
//	├── seq/             Layout-compatible dynamic sequence containers
//	├── msg/builtin/     Generated builtin interface types (Time, Duration)
//	├── msg/std/         Generated standard types (multi-arrays)
//	├── msg/sensor/      Generated sensor message types
//	└── rcl/             Context/node lifecycle, publishers, subscriptions
//
// # Quick Start
//
// Build a message with sequence fields and publish it on an in-process
// topic:
//
//	ctx, err := rcl.NewContext(os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Shutdown()
//
//	node, err := ctx.NewNode("scanner")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pub, err := rcl.NewPublisher[sensor.PointCloud](node, "points")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cloud := sensor.PointCloud{
//	    Intensities: seq.Of[seq.Float32](0.5, 0.25),
//	}
//	err = pub.Publish(&cloud)
//
// # Memory Model
//
// Sequence buffers live on an emulated foreign heap and stay pinned while
// a raw data pointer may be held across the middleware boundary; see the
// seq package for the ownership rules. Sequences are value types with
// exclusive ownership and are not safe for concurrent use.
package rosidlruntime
