package rcl

import (
	"strings"

	"go.uber.org/zap"
)

// Node is a participant in the middleware graph, bound to a context.
type Node struct {
	ctx       *Context
	name      string
	namespace string
	log       *zap.Logger
}

// NodeOption configures a node.
type NodeOption func(*nodeOptions)

type nodeOptions struct {
	namespace string
}

// WithNamespace places the node under the given absolute namespace
// instead of the root namespace.
func WithNamespace(ns string) NodeOption {
	return func(o *nodeOptions) { o.namespace = ns }
}

// NewNode creates a node bound to the context.
func (c *Context) NewNode(name string, opts ...NodeOption) (*Node, error) {
	if !c.OK() {
		return nil, newError(RetAlreadyShutdown, "create_node", "context is shut down")
	}
	cfg := nodeOptions{namespace: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !isValidNameSegment(name) {
		return nil, newError(RetNodeInvalidName, "create_node", "invalid node name %q", name)
	}
	if err := validateNamespace(cfg.namespace); err != nil {
		return nil, err
	}

	log := c.log.With(zap.String("node", name), zap.String("namespace", cfg.namespace))
	log.Debug("node created")

	return &Node{ctx: c, name: name, namespace: cfg.namespace, log: log}, nil
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Namespace returns the node's namespace.
func (n *Node) Namespace() string { return n.namespace }

// FullyQualifiedName returns the namespace-qualified node name.
func (n *Node) FullyQualifiedName() string {
	if n.namespace == "/" {
		return "/" + n.name
	}
	return n.namespace + "/" + n.name
}

// Context returns the context the node is bound to.
func (n *Node) Context() *Context { return n.ctx }

// resolveTopic validates a topic name, expands it relative to the node's
// namespace and applies the context's remap rules.
func (n *Node) resolveTopic(topic string) (string, error) {
	if topic == "" || !isValidNameToken(topic) {
		return "", newError(RetTopicNameInvalid, "resolve_topic", "invalid topic name %q", topic)
	}
	topic = n.ctx.args.Remap(topic)
	switch {
	case strings.HasPrefix(topic, "/"):
		return topic, nil
	case strings.HasPrefix(topic, "~"):
		return n.FullyQualifiedName() + strings.TrimPrefix(topic, "~"), nil
	case n.namespace == "/":
		return "/" + topic, nil
	default:
		return n.namespace + "/" + topic, nil
	}
}

func validateNamespace(ns string) error {
	if ns == "/" {
		return nil
	}
	if !strings.HasPrefix(ns, "/") || strings.HasSuffix(ns, "/") {
		return newError(RetNodeInvalidNamespace, "create_node", "namespace %q must be absolute without a trailing slash", ns)
	}
	for _, segment := range strings.Split(ns[1:], "/") {
		if !isValidNameSegment(segment) {
			return newError(RetNodeInvalidNamespace, "create_node", "invalid namespace segment in %q", ns)
		}
	}
	return nil
}
