// Package backend defines the interface between the reconciler and a
// retained render target, such as a browser DOM or a terminal.
//
// A backend owns a tree of nodes. The reconciler manipulates that tree
// exclusively through the [Backend] interface and addresses insertion
// positions with a [Cursor]. Backends are single-threaded: all methods are
// called from the goroutine driving the update loop.
package backend

// Handle identifies a node owned by a backend. It is opaque to the
// reconciler; each backend chooses its own representation. A nil Handle
// means "no node".
type Handle any

// Token identifies an entry in the driver's handler table. Tokens are
// stable for the lifetime of the retained node that registered them, so
// backends never need to detach and reattach listeners when the handler
// changes.
type Token int

// Event is a backend event bound to a listener token. Payload is
// backend-specific; the DOM bridge delivers the serialized event object,
// the test backend delivers whatever the test supplied.
type Event struct {
	Token   Token
	Type    string
	Payload any
}

// Backend is the mutation surface of a retained render target.
//
// InsertBefore doubles as a move: inserting a node that is already
// attached first detaches it from its old position, as in the DOM.
// A nil anchor appends at the end of the parent's children.
type Backend interface {
	CreateElement(tag string) Handle
	CreateText(data string) Handle
	// CreateMarker creates an invisible node used to delimit a range of
	// dynamic children. Markers take part in sibling order but produce
	// no output.
	CreateMarker() Handle

	SetText(h Handle, data string)
	// SetAttr sets an attribute. When property is true the backend
	// should set a live property (e.g. the current value of an input)
	// rather than a plain attribute.
	SetAttr(h Handle, name, value string, property bool)
	ClearAttr(h Handle, name string, property bool)

	SetListener(h Handle, event string, t Token)
	ClearListener(h Handle, event string, t Token)

	InsertBefore(parent, h, anchor Handle)
	Remove(h Handle)

	FirstChild(parent Handle) Handle
	NextSibling(h Handle) Handle

	// Events returns the channel on which the backend delivers listener
	// events, in arrival order. Closing the channel stops the driver.
	Events() <-chan Event
}

// Flusher is implemented by backends that buffer mutations and present
// them at the end of an update cycle. The driver calls Flush after every
// build or rebuild.
type Flusher interface {
	Flush()
}
