package component

// Node is an identity-bearing wrapper around one component.
//
// Nodes are owned by the section that contains them and are replaced
// wholesale on each render. The only in-place change the framework performs
// goes through the adapter's single-node update path, and even that swaps in
// a new Node value.
type Node struct {
	id       Identifier
	content  Component
	handlers map[ActionKind]any
}

// NewNode wraps content in a node.
func NewNode(content Component) *Node {
	return &Node{
		id:      IdentifierOf(content),
		content: content,
	}
}

// Nodes wraps each content value in a node.
func Nodes(contents ...Component) []*Node {
	nodes := make([]*Node, len(contents))
	for i, c := range contents {
		nodes[i] = NewNode(c)
	}
	return nodes
}

// ID returns the node's identifier.
func (n *Node) ID() Identifier {
	if n == nil {
		return Identifier{}
	}
	return n.id
}

// Content returns the wrapped component.
func (n *Node) Content() Component {
	if n == nil {
		return nil
	}
	return n.content
}

// On returns a copy of n with handler registered for kind.
// The handler is typically a func(*action.Payload); the dispatcher
// ignores handlers of any other type.
func (n *Node) On(kind ActionKind, handler any) *Node {
	next := n.clone()
	next.handlers = make(map[ActionKind]any, len(n.handlers)+1)
	for k, h := range n.handlers {
		next.handlers[k] = h
	}
	next.handlers[kind] = handler
	return next
}

// Handler returns the node-local handler for kind, if any.
func (n *Node) Handler(kind ActionKind) (any, bool) {
	if n == nil || n.handlers == nil {
		return nil, false
	}
	h, ok := n.handlers[kind]
	return h, ok
}

// WithContent returns a node holding content and the same handlers.
// The identifier is re-derived from content.
func (n *Node) WithContent(content Component) *Node {
	next := n.clone()
	next.content = content
	next.id = IdentifierOf(content)
	return next
}

// ContentEquals reports whether n and other render identically.
func (n *Node) ContentEquals(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return ContentEquals(n.content, other.content)
}

// SupportsUpdate reports whether the content can refresh in place.
func (n *Node) SupportsUpdate() bool {
	if n == nil {
		return false
	}
	_, ok := n.content.(Updatable)
	return ok
}

// ShouldContentUpdate reports whether replacing n's content with next
// affects layout. Content that is not Updatable never does.
func (n *Node) ShouldContentUpdate(next Component) bool {
	if n == nil {
		return true
	}
	if u, ok := n.content.(Updatable); ok {
		return u.ShouldContentUpdate(next)
	}
	return false
}

// IsActionable reports whether the content emits actions.
func (n *Node) IsActionable() bool {
	if n == nil {
		return false
	}
	_, ok := n.content.(Actionable)
	return ok
}

// Emits reports whether the content declares kind among its action kinds.
func (n *Node) Emits(kind ActionKind) bool {
	a, ok := n.Content().(Actionable)
	if !ok {
		return false
	}
	for _, k := range a.ActionKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// String returns the node's identifier as a string.
func (n *Node) String() string {
	return n.ID().String()
}

func (n *Node) clone() *Node {
	if n == nil {
		return &Node{}
	}
	c := *n
	return &c
}
