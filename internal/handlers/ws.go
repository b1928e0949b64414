package handlers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minefield/internal/minefield"
)

// ConnectWS answers every text message carrying a BoardRequest with a
// BoardDTO or an {"error": ...} object. Bad requests keep the socket open.
func (h BoardHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		h.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.ws.ReadLimit)

	h.log.Debug("established WS connection")

	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway,
			) {
				h.log.WithError(err).Warn("error in ws loop")
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var reply any
		board, err := h.solveMessage(buf)
		if err != nil {
			if statusOf(err) >= http.StatusInternalServerError {
				h.log.WithError(err).Error("unable to build board")
			}
			reply = wrapError(err)
		} else {
			reply = board
		}

		if err := conn.WriteJSON(reply); err != nil {
			h.log.WithError(err).Warn("unable to write json")
			return
		}
	}
}

func (h BoardHandler) solveMessage(buf []byte) (*BoardDTO, error) {
	req, err := DecodeBoardRequest(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	return solve(minefield.NewGameFromValues(req.Size, req.Rows, req.Cols))
}
