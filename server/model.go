package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/snake/model"
)

// GameServer fans frames of the local game out to spectators. Loop owns
// Viewers; everybody else talks to it through the channels.
type GameServer struct {
	Config         Config
	Viewers        map[string]*ViewerSession
	Frames         chan model.Frame
	ViewerRequests chan ViewerRequest
	Leaves         chan string
	Upgrader       *websocket.Upgrader
	last           *model.Frame
	done           chan struct{}
}

type ViewerSessionState int

const (
	VS_NEW ViewerSessionState = iota + 1
	VS_WATCH
	VS_OVER
	VS_ERR
)

type ViewerSession struct {
	State     ViewerSessionState
	Id        string
	Conn      *websocket.Conn
	Connected time.Time

	MessagesToSend chan model.Frame

	DebugDropped  int
	DebugLastPing time.Time
	DebugPings    int
}
