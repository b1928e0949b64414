package handlers

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/minefield"
)

// 400 cells worth of coordinates fit comfortably.
const maxBodyBytes = 1 << 14

type BoardHandler struct {
	log     logrus.FieldLogger
	decoder *schema.Decoder
	ws      *config.WebSocket
}

func NewBoardHandler(log logrus.FieldLogger, ws *config.WebSocket) *BoardHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	handler := &BoardHandler{
		log:     log,
		decoder: dec,
		ws:      ws,
	}

	return handler
}

func solve(grid *minefield.Grid, err error) (*BoardDTO, error) {
	if err != nil {
		return nil, err
	}
	grid.ComputeNeighborCounts()
	return NewBoardDTO(grid), nil
}

func (h BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := ParseBoardQuery(h.decoder, r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, err)
		return
	}

	board, err := solve(minefield.NewGame(q.Size, q.Rows, q.Cols))
	if err != nil {
		sendErrorOrLog(w, h.log, err)
		return
	}

	sendJSONOrLog(w, h.log, board)
}

func (h BoardHandler) Post(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeBoardRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		sendErrorOrLog(w, h.log, err)
		return
	}

	board, err := solve(minefield.NewGameFromValues(req.Size, req.Rows, req.Cols))
	if err != nil {
		sendErrorOrLog(w, h.log, err)
		return
	}

	sendJSONOrLog(w, h.log, board)
}
