package server

import (
	"context"
	"encoding/gob"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snake/model"
)

func NewGameServer(cfg Config) *GameServer {
	return &GameServer{
		Config:         cfg,
		Viewers:        make(map[string]*ViewerSession),
		Frames:         make(chan model.Frame, cfg.FrameBuffer),
		ViewerRequests: make(chan ViewerRequest),
		Leaves:         make(chan string),
		Upgrader:       &websocket.Upgrader{},
		done:           make(chan struct{}),
	}
}

// Publish hands a frame to Loop. Running frames never block the caller, which
// is the UI thread, and are dropped when Frames is full. The game over frame
// ends every spectator session, so it waits up to Config.FinalFrameWait.
// It reports false when the frame was dropped.
func (s *GameServer) Publish(f model.Frame) bool {
	select {
	case s.Frames <- f:
		return true
	default:
	}
	if f.Over() {
		select {
		case s.Frames <- f:
			return true
		case <-time.After(s.Config.FinalFrameWait):
		}
	}
	log.Warnf("GameServer.Publish dropping frame tick:%d state:%s, Frames FULL", f.Tick, f.State.Name())
	return false
}

// ListenAndServe runs Loop and the http server until ctx is cancelled.
func (s *GameServer) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: ":" + s.Config.Port, Handler: s.Routes()}
	go s.Loop(ctx)
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	log.Infof("GameServer listening on :%s%s", s.Config.Port, URI_WATCH)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("spectator server: %w", err)
	}
	return nil
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := s.Config.RegisterTimeout
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - Connection received from %s", r.RemoteAddr)

		vs := newViewerSession(s.Config.ViewerBuffer)
		awaiting := make(chan ViewerAwaiting, 1)
		select {
		case s.ViewerRequests <- ViewerRequest{Viewer: vs, ViewerAwaiting: awaiting}:
			log.Debugf("HandleHttpCall -> GameServer.ViewerRequests id:%s", vs.Id)
		case <-time.After(timeout):
			log.Warn("ViewerRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		select {
		case va := <-awaiting:
			if va.ResponseCode != VIEWER_READY {
				log.Warnf("HandleHttpCall viewer %s rejected code:%d", vs.Id, va.ResponseCode)
				w.WriteHeader(va.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warnf("HandleHttpCall ViewerAwaiting <- TIMEOUTED")
			s.leave(vs.Id)
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already answered the request
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			s.leave(vs.Id)
			return
		}
		defer con.Close()

		vs.Conn = con
		vs.Connected = time.Now()
		vs.setPingHandler()
		go vs.LoopChannelWrite()

		// blocks until the spectator goes away
		vs.LoopChannelRead()
		s.leave(vs.Id)
		log.Infof("HandleHttpCall viewer %s left after %v, pings:%d last:%v",
			vs.Id, time.Since(vs.Connected).Round(time.Millisecond), vs.DebugPings, vs.lastPing())
	}
}

// Loop owns the viewer registry. It returns when ctx is cancelled.
func (s *GameServer) Loop(ctx context.Context) {
	log.Printf("GameServer.Loop starting")
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			for id, vs := range s.Viewers {
				close(vs.MessagesToSend)
				delete(s.Viewers, id)
			}
			log.Printf("GameServer.Loop ENDED")
			return
		case req := <-s.ViewerRequests:
			if len(s.Viewers) >= s.Config.MaxViewers {
				req.ViewerAwaiting <- ViewerAwaiting{ResponseCode: VIEWER_REJECTED}
				continue
			}
			vs := req.Viewer
			vs.State = VS_WATCH
			s.Viewers[vs.Id] = vs
			if s.last != nil {
				// fresh buffered channel, cannot block
				vs.MessagesToSend <- *s.last
			}
			log.Infof("GameServer.Loop viewer %s joined, watching:%d", vs.Id, len(s.Viewers))
			req.ViewerAwaiting <- ViewerAwaiting{ResponseCode: VIEWER_READY}
		case f := <-s.Frames:
			s.last = &f
			for _, vs := range s.Viewers {
				vs.deliver(f)
			}
		case id := <-s.Leaves:
			if vs, found := s.Viewers[id]; found {
				close(vs.MessagesToSend)
				delete(s.Viewers, id)
				log.Infof("GameServer.Loop viewer %s removed, dropped:%d watching:%d", id, vs.DebugDropped, len(s.Viewers))
			}
		}
	}
}

func (s *GameServer) leave(id string) {
	select {
	case s.Leaves <- id:
	case <-s.done:
	}
}

func newViewerSession(buffer int) *ViewerSession {
	return &ViewerSession{
		State:          VS_NEW,
		Id:             uuid.New().String(),
		MessagesToSend: make(chan model.Frame, buffer),
	}
}

// deliver queues f without blocking Loop. A slow viewer loses running frames,
// but the game over frame replaces the oldest queued one instead.
func (vs *ViewerSession) deliver(f model.Frame) {
	select {
	case vs.MessagesToSend <- f:
		return
	default:
	}
	if f.Over() {
		// Loop is the only sender, so one receive frees a slot
		select {
		case <-vs.MessagesToSend:
			vs.DebugDropped++
		default:
		}
		select {
		case vs.MessagesToSend <- f:
			return
		default:
		}
	}
	vs.DebugDropped++
	log.Warnf("GameServer.Loop viewer %s too slow, dropping tick:%d", vs.Id, f.Tick)
}

func (vs *ViewerSession) lastPing() string {
	if vs.DebugLastPing.IsZero() {
		return "never"
	}
	return vs.DebugLastPing.Format(time.RFC3339)
}

func (vs *ViewerSession) setPingHandler() {
	conn := vs.Conn
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			vs.DebugLastPing = time.Now()
			vs.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
}

// LoopChannelRead only drains control frames; spectators cannot steer.
func (vs *ViewerSession) LoopChannelRead() {
	log.Debugf("LoopChannelRead STARTED %s", vs.Id)
	for {
		if _, _, err := vs.Conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("LoopChannelRead %s err reading from Conn %v", vs.Id, err)
			}
			break
		}
	}
	log.Debugf("LoopChannelRead ENDED %s", vs.Id)
}

// LoopChannelWrite sends frames until the channel is closed, a write fails or
// the game is over.
func (vs *ViewerSession) LoopChannelWrite() {
	log.Debugf("ViewerSession.LoopChannelWrite STARTED %s", vs.Id)
	defer vs.Conn.Close()
	for mes := range vs.MessagesToSend {
		if err := vs.write(mes); err != nil {
			log.Warnf("ViewerSession.LoopChannelWrite %s %v", vs.Id, err)
			vs.State = VS_ERR
			return
		}
		if mes.Over() {
			vs.State = VS_OVER
			err := vs.Conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"),
				time.Now().Add(time.Second))
			if err != nil {
				log.Debugf("ViewerSession.LoopChannelWrite close %s %v", vs.Id, err)
			}
			return
		}
	}
	log.Debugf("ViewerSession.LoopChannelWrite ENDED %s", vs.Id)
}

func (vs *ViewerSession) write(f model.Frame) error {
	w, err := vs.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return fmt.Errorf("cant get writer: %w", err)
	}
	if err := gob.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("cant encode tick %d: %w", f.Tick, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("cant flush tick %d: %w", f.Tick, err)
	}
	return nil
}
