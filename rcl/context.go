package rcl

import (
	"sync"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

// Context owns the middleware's process-wide state: the parsed arguments
// and the in-process transport. All nodes are bound to a context and
// become unusable once it is shut down.
type Context struct {
	mu       sync.Mutex
	args     *Arguments
	log      *zap.Logger
	bus      *gochannel.GoChannel
	shutdown bool
}

// Option configures a context.
type Option func(*contextOptions)

type contextOptions struct {
	log          *zap.Logger
	outputBuffer int64
}

// WithLogger sets the context's logger instead of the package default.
func WithLogger(l *zap.Logger) Option {
	return func(o *contextOptions) { o.log = l }
}

// WithOutputBuffer sets the per-subscriber channel buffer of the
// in-process transport.
func WithOutputBuffer(n int64) Option {
	return func(o *contextOptions) { o.outputBuffer = n }
}

// NewContext creates a context from the process arguments, usually
// os.Args. Creation fails when the --ros-args section contains an invalid
// rule:
//
//	ctx, err := rcl.NewContext([]string{"app", "--ros-args", "-r", "a:=b"})
func NewContext(osArgs []string, opts ...Option) (*Context, error) {
	cfg := contextOptions{log: Logger(), outputBuffer: 64}
	for _, opt := range opts {
		opt(&cfg)
	}

	args, err := ParseArgs(osArgs)
	if err != nil {
		return nil, err
	}

	bus := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: cfg.outputBuffer},
		newTransportLogger(cfg.log),
	)

	cfg.log.Debug("context created",
		zap.Int("remap_rules", len(args.Remaps)),
		zap.Int("params", len(args.Params)),
	)

	return &Context{args: args, log: cfg.log, bus: bus}, nil
}

// OK reports whether the context is still valid, i.e. has not been shut
// down.
func (c *Context) OK() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.shutdown
}

// Shutdown invalidates the context and closes the transport. Subsequent
// calls are no-ops.
func (c *Context) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.shutdown {
		return nil
	}
	c.shutdown = true
	c.log.Debug("context shutdown")
	return c.bus.Close()
}

// Args returns the parsed middleware arguments.
func (c *Context) Args() *Arguments { return c.args }

// Param returns the value of a parameter rule given at startup.
func (c *Context) Param(name string) (string, bool) {
	v, ok := c.args.Params[name]
	return v, ok
}
