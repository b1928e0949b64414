package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Board requests are a few hundred bytes at most.
const wsReadLimit = 1 << 14

type WebSocket struct {
	Upgrader  websocket.Upgrader
	ReadLimit int64
}

func NewWebSocket() (*WebSocket, error) {
	readLimit, err := lookupInt("WS_READ_LIMIT", wsReadLimit)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: int64(readLimit),
	}

	return ws, nil
}
