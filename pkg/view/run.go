package view

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/ravelui/ravel/pkg/backend"
)

// Driver owns an application model and the root retained state, and
// drives the update cycle: materialize a view tree from the model,
// build or rebuild, wait for a backend event, run the handler against
// the model, repeat. It is the framework's [EventSink]: handler tokens
// index its handler table.
//
// A Driver is single-threaded. Render and Dispatch must be called from
// one goroutine; Run does exactly that and is the usual entry point,
// while the step-wise methods serve tests and embedding backends.
type Driver[M any] struct {
	b         backend.Backend
	container backend.Handle
	app       func(*M) View
	model     M

	root    State
	rootTyp typeToken

	handlers map[backend.Token]Handler
	next     backend.Token
	dirty    bool
}

// NewDriver returns a driver owning model. The app function is invoked
// once per cycle with the model; event handlers in the returned tree
// close over the same pointer and may mutate the model when they fire.
func NewDriver[M any](b backend.Backend, container backend.Handle, model M, app func(*M) View) *Driver[M] {
	return &Driver[M]{
		b:         b,
		container: container,
		app:       app,
		model:     model,
		handlers:  make(map[backend.Token]Handler),
	}
}

// Model returns the driver's model.
func (d *Driver[M]) Model() *M { return &d.model }

// Render runs one build or rebuild pass. The descriptor tree returned
// by the app function is consumed by the pass and no reference to it is
// kept.
func (d *Driver[M]) Render() {
	root := d.app(&d.model)
	cx := &Cx{B: d.b, Cur: backend.Enter(d.b, d.container), Sink: d}
	if d.root == nil {
		d.rootTyp = tokenOf(root)
		d.root = root.Build(cx)
	} else if t := tokenOf(root); t != d.rootTyp {
		// The root is implicitly dynamic: the container's children are
		// exclusively ours, so no markers are needed to find the range.
		for h := d.b.FirstChild(d.container); h != nil; h = d.b.FirstChild(d.container) {
			d.b.Remove(h)
		}
		d.root.Free(d)
		d.rootTyp = t
		d.root = root.Build(&Cx{B: d.b, Cur: backend.Enter(d.b, d.container), Sink: d})
	} else {
		root.Rebuild(cx, d.root)
	}
	d.dirty = false
	if f, ok := d.b.(backend.Flusher); ok {
		f.Flush()
	}
}

// Dispatch runs the handler registered for ev's token. Events whose
// token is no longer registered are dropped: the node was torn down
// after the event was queued.
func (d *Driver[M]) Dispatch(ev backend.Event) {
	h, ok := d.handlers[ev.Token]
	if !ok {
		glog.V(1).Infof("ravel: dropping event %q for stale token %d", ev.Type, ev.Token)
		return
	}
	h(ev)
	d.dirty = true
}

// Dirty reports whether a handler has run since the last Render.
func (d *Driver[M]) Dirty() bool { return d.dirty }

// NumHandlers returns the number of live handler-table entries.
func (d *Driver[M]) NumHandlers() int { return len(d.handlers) }

// Run renders the initial tree, then processes backend events until the
// backend closes its event channel. Between renders it drains every
// queued event, in arrival order, so a burst of events costs one
// rebuild.
func (d *Driver[M]) Run() error {
	defer glog.Flush()
	d.Render()
	events := d.b.Events()
	for ev := range events {
		d.Dispatch(ev)
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					break drain
				}
				d.Dispatch(ev)
			default:
				break drain
			}
		}
		if d.dirty {
			d.Render()
		}
	}
	return nil
}

// Register allocates a handler token. Part of [EventSink].
func (d *Driver[M]) Register(h Handler) backend.Token {
	d.next++
	d.handlers[d.next] = h
	return d.next
}

// Replace swaps the closure stored for t. Part of [EventSink].
func (d *Driver[M]) Replace(t backend.Token, h Handler) {
	if _, ok := d.handlers[t]; !ok {
		panic(fmt.Sprintf("ravel: replacing unregistered handler token %d", t))
	}
	d.handlers[t] = h
}

// Release frees the slot for t. Part of [EventSink].
func (d *Driver[M]) Release(t backend.Token) {
	delete(d.handlers, t)
}

// Run installs a driver for app on container and processes events until
// the backend stops. It is the plain entry point for applications that
// do not need step-wise control.
func Run[M any](b backend.Backend, container backend.Handle, model M, app func(*M) View) error {
	return NewDriver(b, container, model, app).Run()
}
