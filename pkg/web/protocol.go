package web

import "encoding/json"

// The bridge speaks JSON-RPC 2.0 notifications over a websocket. The
// server owns the retained tree and streams mutations to the browser,
// which mirrors them onto the real DOM; the browser streams listener
// events back. Node handles are server-assigned integers; 0 means
// "none".
//
// Server to client methods.
const (
	methodHello         = "ravel/hello"
	methodCreateElement = "ravel/createElement"
	methodCreateText    = "ravel/createText"
	methodCreateMarker  = "ravel/createMarker"
	methodSetText       = "ravel/setText"
	methodSetAttr       = "ravel/setAttr"
	methodClearAttr     = "ravel/clearAttr"
	methodSetListener   = "ravel/setListener"
	methodClearListener = "ravel/clearListener"
	methodInsertBefore  = "ravel/insertBefore"
	methodMoveRange     = "ravel/moveRange"
	methodRemove        = "ravel/remove"
)

// Client to server method.
const methodEvent = "ravel/event"

type helloParams struct {
	Session string `json:"session"`
	Root    int    `json:"root"`
}

type createParams struct {
	ID   int    `json:"id"`
	Tag  string `json:"tag,omitempty"`
	Text string `json:"text,omitempty"`
}

type setTextParams struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type attrParams struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	Property bool   `json:"property,omitempty"`
}

type listenerParams struct {
	ID    int    `json:"id"`
	Event string `json:"event"`
	Token int    `json:"token"`
}

type insertParams struct {
	Parent int `json:"parent"`
	ID     int `json:"id"`
	Anchor int `json:"anchor,omitempty"`
}

type moveRangeParams struct {
	Parent int `json:"parent"`
	First  int `json:"first"`
	Limit  int `json:"limit,omitempty"`
	Anchor int `json:"anchor,omitempty"`
}

type removeParams struct {
	ID int `json:"id"`
}

type eventParams struct {
	Token   int             `json:"token"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
