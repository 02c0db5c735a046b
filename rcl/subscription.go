package rcl

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	rosidlruntime "github.com/rosmesh/rosidl-runtime"
)

// Subscription receives messages of type T from a topic.
type Subscription[T rosidlruntime.Message] struct {
	node   *Node
	topic  string
	ch     <-chan *message.Message
	cancel context.CancelFunc
	log    *zap.Logger
}

// NewSubscription creates a subscription on the node for the given topic.
func NewSubscription[T rosidlruntime.Message](n *Node, topic string) (*Subscription[T], error) {
	resolved, err := n.resolveTopic(topic)
	if err != nil {
		return nil, err
	}
	if !n.ctx.OK() {
		return nil, newError(RetAlreadyShutdown, "create_subscription", "context is shut down")
	}
	sctx, cancel := context.WithCancel(context.Background())
	ch, err := n.ctx.bus.Subscribe(sctx, resolved)
	if err != nil {
		cancel()
		return nil, &Error{Code: RetError, Op: "create_subscription", Detail: "transport subscribe", Cause: err}
	}
	var zero T
	s := &Subscription[T]{
		node:   n,
		topic:  resolved,
		ch:     ch,
		cancel: cancel,
		log:    n.log.With(zap.String("topic", resolved), zap.String("type", zero.TypeName())),
	}
	s.log.Debug("subscription created")
	return s, nil
}

// Topic returns the fully resolved topic name.
func (s *Subscription[T]) Topic() string { return s.topic }

// Next blocks until a message arrives, the subscription closes or ctx is
// done. Messages carrying a different declared type are rejected.
func (s *Subscription[T]) Next(ctx context.Context) (*T, error) {
	select {
	case <-ctx.Done():
		return nil, &Error{Code: RetTimeout, Op: "take", Detail: "waiting for message", Cause: ctx.Err()}
	case wm, ok := <-s.ch:
		if !ok {
			return nil, newError(RetSubscriptionInvalid, "take", "subscription closed")
		}
		msg := new(T)
		var zero T
		if got := wm.Metadata.Get(metaType); got != "" && got != zero.TypeName() {
			wm.Ack()
			return nil, newError(RetInvalidArgument, "take", "message type %q does not match %q", got, zero.TypeName())
		}
		if err := sonic.Unmarshal(wm.Payload, msg); err != nil {
			wm.Ack()
			return nil, &Error{Code: RetError, Op: "take", Detail: "decode message", Cause: err}
		}
		wm.Ack()
		return msg, nil
	}
}

// Spin delivers messages to fn until ctx is done or the subscription
// closes. A canceled context is a normal return.
func (s *Subscription[T]) Spin(ctx context.Context, fn func(*T)) error {
	for {
		msg, err := s.Next(ctx)
		if err != nil {
			var rclErr *Error
			if errors.As(err, &rclErr) && rclErr.Code == RetTimeout {
				return nil
			}
			return err
		}
		fn(msg)
	}
}

// Close stops the subscription. Further Next calls fail.
func (s *Subscription[T]) Close() {
	s.cancel()
	s.log.Debug("subscription closed")
}
