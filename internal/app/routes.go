package app

import (
	"net/http"

	"github.com/vancomm/minefield/internal/handlers"
)

func (a *App) loadRoutes() {
	board := handlers.NewBoardHandler(a.log, a.ws)

	a.router.HandleFunc("GET "+a.basePath+"/board", board.Get)
	a.router.HandleFunc("POST "+a.basePath+"/board", board.Post)
	a.router.HandleFunc(a.basePath+"/board/connect", board.ConnectWS)
	a.router.HandleFunc("GET "+a.basePath+"/status", func(w http.ResponseWriter, r *http.Request) {
		handlers.SendJSON(w, map[string]string{"status": "ok"})
	})
}
