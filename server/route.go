package server

import (
	"net/http"

	"github.com/matryer/way"
)

const URI_WATCH = "/watch"

func (s *GameServer) Routes() http.Handler {
	router := way.NewRouter()
	router.HandleFunc("GET", URI_WATCH, s.HandleHttpCall())
	return router
}
