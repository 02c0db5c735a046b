// Package rcl wraps the middleware's process lifecycle: contexts, nodes,
// publishers and subscriptions.
//
// A Context is created from the process arguments and owns the transport;
// Nodes are created from a context and publishers/subscriptions from a
// node. Middleware-specific arguments follow the usual convention:
//
//	app --ros-args -r chatter:=loud_chatter -p rate:=10 --
//
// Invalid remap or parameter rule syntax is the primary construction
// failure and is reported as an *Error carrying a ReturnCode.
//
// Transport is in-process: topics are backed by a go-channel Pub/Sub and
// payloads are encoded with sonic. The sequence containers (package seq)
// do not depend on this package.
package rcl
