package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/minefield"
)

func newTestHandler(t *testing.T) *BoardHandler {
	t.Helper()
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	ws, err := config.NewWebSocket()
	require.NoError(t, err)
	return NewBoardHandler(log, ws)
}

func decodeBody(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestParseBoardQuery(t *testing.T) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	tests := []struct {
		name  string
		query string
		want  BoardQuery
		err   error
	}{
		{
			name:  "full",
			query: "size=3&row=0&col=1&row=1&col=0&extra=x",
			want:  BoardQuery{Size: 3, Rows: []int{0, 1}, Cols: []int{1, 0}},
		},
		{
			name:  "no mines",
			query: "size=2",
			want:  BoardQuery{Size: 2},
		},
		{
			name:  "missing size",
			query: "row=1&col=1",
			err:   minefield.TypeMismatchError{Field: minefield.FieldSize},
		},
		{
			name:  "bad size",
			query: "size=abc",
			err:   minefield.TypeMismatchError{Field: minefield.FieldSize},
		},
		{
			name:  "bad row",
			query: "size=3&row=a&col=1",
			err:   minefield.TypeMismatchError{Field: minefield.FieldRows},
		},
		{
			name:  "empty coordinates",
			query: "size=3&row=&col=",
			err:   minefield.TypeMismatchError{Field: minefield.FieldRows},
		},
		{
			name:  "empty row among values",
			query: "size=3&row=&row=1&col=1&col=2",
			err:   minefield.TypeMismatchError{Field: minefield.FieldRows},
		},
		{
			name:  "empty col",
			query: "size=3&row=1&col=",
			err:   minefield.TypeMismatchError{Field: minefield.FieldCols},
		},
		{
			name:  "repeated size",
			query: "size=3&size=4",
			err:   minefield.TypeMismatchError{Field: minefield.FieldSize},
		},
		{
			name:  "bad size before empty row",
			query: "size=abc&row=",
			err:   minefield.TypeMismatchError{Field: minefield.FieldSize},
		},
		{
			name:  "bad col",
			query: "size=3&row=1&col=1.5",
			err:   minefield.TypeMismatchError{Field: minefield.FieldCols},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/board?"+test.query, nil)
			q, err := ParseBoardQuery(dec, req.URL.Query())
			if test.err != nil {
				assert.Equal(t, test.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, q)
		})
	}
}

func TestGetBoard(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/board?size=3&row=2&col=0&row=1&col=2&row=0&col=1&row=2&col=2", nil)

	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var board BoardDTO
	decodeBody(t, rec.Body, &board)
	assert.Equal(t, BoardDTO{
		Size:  3,
		Mines: 4,
		Rows:  []string{"1B2", "24B", "B3B"},
		Board: "1B2\n24B\nB3B",
	}, board)
}

func TestGetBoardInvalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"size out of range", "size=21", "size out of [1,20]: 21"},
		{"length mismatch", "size=5&row=0&row=1&col=0", "coordinates of mines must be equal length (rows = 2, cols = 1)"},
		{"duplicate", "size=3&row=1&col=1&row=1&col=1", "cell (1, 1) already contains a mine, mine locations must be unique"},
		{"type", "size=x", "size must be an integer"},
		{"empty coordinates", "size=3&row=&col=", "rowCoords must be a list of integers"},
		{"repeated size", "size=3&size=4", "size must be an integer"},
	}

	h := newTestHandler(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Get(rec, httptest.NewRequest(http.MethodGet, "/board?"+test.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			decodeBody(t, rec.Body, &body)
			assert.Equal(t, test.want, body["error"])
		})
	}
}

func TestPostBoard(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/board", strings.NewReader(
		`{"size": 5, "rows": [2, 3, 2, 3, 1, 1, 3, 1], "cols": [3, 3, 1, 1, 1, 2, 2, 3]}`,
	))

	h.Post(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var board BoardDTO
	decodeBody(t, rec.Body, &board)
	assert.Equal(t, "12321\n2BBB2\n3B8B3\n2BBB2\n12321", board.Board)
	assert.Equal(t, 8, board.Mines)
	assert.Len(t, board.Rows, 5)
}

func TestPostBoardInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed", `{"size": `, ""},
		{"string size", `{"size": "abc", "rows": [], "cols": []}`, "size must be an integer"},
		{"fractional size", `{"size": 2.5, "rows": [], "cols": []}`, "size must be an integer"},
		{"string cols", `{"size": 5, "rows": [], "cols": "abc"}`, "colCoords must be a list of integers"},
		{"missing rows", `{"size": 5, "cols": []}`, "rowCoords must be a list of integers"},
		{"coordinate", `{"size": 5, "rows": [0, 1, 6], "cols": [0, 1, 2]}`, "invalid cell coordinates of mine 2 (6, 2), each must be within [0..4]"},
	}

	h := newTestHandler(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Post(rec, httptest.NewRequest(http.MethodPost, "/board", strings.NewReader(test.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			decodeBody(t, rec.Body, &body)
			if test.want == "" {
				assert.Contains(t, body["error"], "malformed board request")
				return
			}
			assert.Equal(t, test.want, body["error"])
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusOf(minefield.InvalidSizeError{Size: 0}))
	assert.Equal(t, http.StatusBadRequest, statusOf(badRequestError{io.ErrUnexpectedEOF}))
	assert.Equal(t, http.StatusInternalServerError, statusOf(io.ErrClosedPipe))
}
