// Package web serves Ravel applications to browsers. The Go process
// owns the model and the retained tree; a thin browser client mirrors
// tree mutations onto the real DOM and reports listener events back.
// Each websocket connection gets its own model and driver.
package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"github.com/sourcegraph/jsonrpc2"
	wsstream "github.com/sourcegraph/jsonrpc2/websocket"

	"github.com/ravelui/ravel/pkg/backend"
	"github.com/ravelui/ravel/pkg/view"
)

// Server is an http.Handler running one Ravel session per websocket
// connection.
type Server[M any] struct {
	newModel func() M
	app      func(*M) view.View
	upgrader websocket.Upgrader
}

// NewServer returns a Server that calls newModel for each session's
// initial model and app on every update cycle.
func NewServer[M any](newModel func() M, app func(*M) view.View) *Server[M] {
	return &Server[M]{newModel: newModel, app: app}
}

func (s *Server[M]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Warningf("ravel/web: websocket upgrade: %v", err)
		return
	}
	sid := ulid.Make().String()
	glog.Infof("ravel/web: session %s from %s", sid, r.RemoteAddr)

	ctx := r.Context()
	b := newBridgeBackend(nil)
	rpc := jsonrpc2.NewConn(ctx, wsstream.NewObjectStream(ws), eventHandler(b))
	b.notify = func(method string, params any) {
		if err := rpc.Notify(ctx, method, params); err != nil {
			glog.V(1).Infof("ravel/web: session %s notify %s: %v", sid, method, err)
		}
	}
	b.notify(methodHello, helloParams{Session: sid, Root: id(b.Root())})

	go func() {
		<-rpc.DisconnectNotify()
		b.close()
	}()

	if err := view.Run(b, b.Root(), s.newModel(), s.app); err != nil {
		glog.Warningf("ravel/web: session %s: %v", sid, err)
	}
	rpc.Close()
	glog.Infof("ravel/web: session %s closed", sid)
}

// eventHandler routes ravel/event notifications from the browser into
// the backend's event queue.
func eventHandler(b *bridgeBackend) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		if req.Method != methodEvent {
			return nil, &jsonrpc2.Error{
				Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
		}
		var params eventParams
		if req.Params != nil {
			if err := json.Unmarshal(*req.Params, &params); err != nil {
				return nil, &jsonrpc2.Error{
					Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
			}
		}
		b.deliver(backend.Event{
			Token:   backend.Token(params.Token),
			Type:    params.Type,
			Payload: params.Payload,
		})
		return nil, nil
	})
}
