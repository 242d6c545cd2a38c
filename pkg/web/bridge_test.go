package web

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/ravelui/ravel/pkg/backend"
	"github.com/ravelui/ravel/pkg/html"
	"github.com/ravelui/ravel/pkg/view"
)

func counterApp(m *int) view.View {
	return html.Div(nil,
		view.Text("count: "),
		view.Text(strconv.Itoa(*m)),
		html.Button(
			html.Attrs(html.OnClick(func(backend.Event) { *m++ })),
			view.Text("+")),
	)
}

type note struct {
	method string
	params json.RawMessage
}

func TestBridgeBackendNotifications(t *testing.T) {
	var notes []note
	b := newBridgeBackend(func(method string, params any) {
		raw, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("marshaling %s params: %v", method, err)
		}
		notes = append(notes, note{method, raw})
	})
	d := view.NewDriver(b, b.Root(), 0, counterApp)
	d.Render()

	methods := make(map[string]int)
	for _, n := range notes {
		methods[n.method]++
	}
	assert.Equal(t, methods[methodCreateElement], 2) // div, button
	assert.Equal(t, methods[methodCreateText], 3)
	assert.Equal(t, methods[methodSetListener], 1)
	if methods[methodInsertBefore] == 0 {
		t.Errorf("no insertBefore notifications: %v", methods)
	}

	// The shadow tree answers structural queries locally.
	assert.Equal(t, b.Tree.RenderText(), "count: 0+")
}

// testClient is the browser side of a bridge connection: it records
// notifications and exposes the listener tokens it has seen.
type testClient struct {
	conn     *jsonrpc2.Conn
	setTexts chan string
	tokens   chan int
}

func newTestClient(ctx context.Context, rwc net.Conn) *testClient {
	c := &testClient{
		setTexts: make(chan string, 64),
		tokens:   make(chan int, 64),
	}
	handler := jsonrpc2.HandlerWithError(func(_ context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		switch req.Method {
		case methodSetListener:
			var p listenerParams
			json.Unmarshal(*req.Params, &p)
			c.tokens <- p.Token
		case methodSetText:
			var p setTextParams
			json.Unmarshal(*req.Params, &p)
			c.setTexts <- p.Text
		}
		return nil, nil
	})
	c.conn = jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}), handler)
	return c
}

func TestBridgeRoundTrip(t *testing.T) {
	ctx := context.Background()
	serverSide, clientSide := net.Pipe()

	b := newBridgeBackend(nil)
	rpc := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(serverSide, jsonrpc2.VSCodeObjectCodec{}),
		eventHandler(b))
	b.notify = func(method string, params any) {
		rpc.Notify(ctx, method, params)
	}
	go func() {
		<-rpc.DisconnectNotify()
		b.close()
	}()
	done := make(chan error)
	go func() { done <- view.Run(b, b.Root(), 0, counterApp) }()

	client := newTestClient(ctx, clientSide)

	var token int
	select {
	case token = <-client.tokens:
	case <-time.After(5 * time.Second):
		t.Fatalf("no setListener notification")
	}

	// A click from the browser increments the model and streams the new
	// text back.
	client.conn.Notify(ctx, methodEvent, eventParams{Token: token, Type: "click"})
	select {
	case text := <-client.setTexts:
		assert.Equal(t, text, "1")
	case <-time.After(5 * time.Second):
		t.Fatalf("no setText notification after click")
	}

	client.conn.Close()
	select {
	case err := <-done:
		assert.Equal(t, err, nil)
	case <-time.After(5 * time.Second):
		t.Fatalf("driver did not stop after disconnect")
	}
}
