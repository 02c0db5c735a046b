package rcl

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	rosidlruntime "github.com/rosmesh/rosidl-runtime"
)

// Metadata keys carried with every transported message.
const (
	metaType         = "message_type"
	metaPublisherGID = "publisher_gid"
)

// Publisher publishes messages of type T on a topic. The sequence buffers
// inside the message stay owned by the caller; Publish walks their views
// without taking ownership.
type Publisher[T rosidlruntime.Message] struct {
	node  *Node
	topic string
	gid   string
	log   *zap.Logger
}

// NewPublisher creates a publisher on the node for the given topic. The
// topic is validated, expanded relative to the node and remapped per the
// context's rules.
func NewPublisher[T rosidlruntime.Message](n *Node, topic string) (*Publisher[T], error) {
	resolved, err := n.resolveTopic(topic)
	if err != nil {
		return nil, err
	}
	var zero T
	p := &Publisher[T]{
		node:  n,
		topic: resolved,
		gid:   ulid.Make().String(),
		log:   n.log.With(zap.String("topic", resolved), zap.String("type", zero.TypeName())),
	}
	p.log.Debug("publisher created", zap.String("gid", p.gid))
	return p, nil
}

// Topic returns the fully resolved topic name.
func (p *Publisher[T]) Topic() string { return p.topic }

// GID returns the publisher's global identifier.
func (p *Publisher[T]) GID() string { return p.gid }

// Publish sends one message to all current subscribers of the topic.
func (p *Publisher[T]) Publish(msg *T) error {
	if !p.node.ctx.OK() {
		return newError(RetPublisherInvalid, "publish", "context is shut down")
	}
	payload, err := sonic.Marshal(msg)
	if err != nil {
		return &Error{Code: RetError, Op: "publish", Detail: "encode message", Cause: err}
	}
	var zero T
	wm := message.NewMessage(ulid.Make().String(), payload)
	wm.Metadata.Set(metaType, zero.TypeName())
	wm.Metadata.Set(metaPublisherGID, p.gid)
	if err := p.node.ctx.bus.Publish(p.topic, wm); err != nil {
		return &Error{Code: RetError, Op: "publish", Detail: "transport publish", Cause: err}
	}
	return nil
}
