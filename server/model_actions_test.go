package server

import (
	"context"
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/snake/model"
)

func startServer(t *testing.T, cfg Config) (*GameServer, string, func()) {
	t.Helper()
	s := NewGameServer(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	go s.Loop(ctx)
	ts := httptest.NewServer(s.Routes())
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + URI_WATCH
	return s, url, func() {
		cancel()
		ts.Close()
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) model.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	messageType, r, err := conn.NextReader()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, messageType)
	var f model.Frame
	require.NoError(t, gob.NewDecoder(r).Decode(&f))
	return f
}

func frame(tick int, state model.RunState) model.Frame {
	return model.Frame{
		Tick:      tick,
		Width:     model.ScreenWidth,
		Height:    model.ScreenHeight,
		Unit:      model.UnitSize,
		Head:      model.Point{X: 25 * tick, Y: 0},
		Body:      []model.Point{{X: 0, Y: 0}},
		BodyParts: 2,
		Score:     tick,
		State:     state,
	}
}

func TestViewerWatchesUntilGameOver(t *testing.T) {
	s, url, stop := startServer(t, DefaultConfig())
	defer stop()
	conn := dial(t, url)
	defer conn.Close()

	require.True(t, s.Publish(frame(1, model.RUNNING)))
	f := readFrame(t, conn)
	assert.Equal(t, 1, f.Tick)
	assert.Equal(t, model.Point{X: 25, Y: 0}, f.Head)
	assert.Equal(t, []model.Point{{X: 0, Y: 0}}, f.Body)
	assert.Equal(t, model.RUNNING, f.State)

	require.True(t, s.Publish(frame(2, model.OVER)))
	f = readFrame(t, conn)
	assert.True(t, f.Over())

	_, _, err := conn.NextReader()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestLateViewerGetsLatestFrame(t *testing.T) {
	s, url, stop := startServer(t, DefaultConfig())
	defer stop()

	require.True(t, s.Publish(frame(7, model.RUNNING)))
	conn := dial(t, url)
	defer conn.Close()

	assert.Equal(t, 7, readFrame(t, conn).Tick)
}

func TestEveryViewerGetsTheFrame(t *testing.T) {
	s, url, stop := startServer(t, DefaultConfig())
	defer stop()
	a := dial(t, url)
	defer a.Close()
	b := dial(t, url)
	defer b.Close()

	require.True(t, s.Publish(frame(3, model.RUNNING)))

	assert.Equal(t, 3, readFrame(t, a).Tick)
	assert.Equal(t, 3, readFrame(t, b).Tick)
}

func TestRejectsViewersOverCapacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxViewers = 1
	_, url, stop := startServer(t, cfg)
	defer stop()
	first := dial(t, url)
	defer first.Close()

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRegisterTimesOutWithoutLoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RegisterTimeout = 20 * time.Millisecond
	s := NewGameServer(cfg)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + URI_WATCH)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode)
}

func TestPublishNeverBlocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameBuffer = 1
	s := NewGameServer(cfg)

	assert.True(t, s.Publish(frame(1, model.RUNNING)))
	assert.False(t, s.Publish(frame(2, model.RUNNING)))
}

func TestPublishWaitsForRoomForGameOver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameBuffer = 1
	cfg.FinalFrameWait = 2 * time.Second
	s := NewGameServer(cfg)
	require.True(t, s.Publish(frame(1, model.RUNNING)))

	published := make(chan bool, 1)
	go func() {
		published <- s.Publish(frame(2, model.OVER))
	}()

	assert.Equal(t, 1, (<-s.Frames).Tick)
	assert.True(t, <-published)
	last := <-s.Frames
	assert.Equal(t, 2, last.Tick)
	assert.True(t, last.Over())
}

func TestPublishGivesUpOnGameOverWithoutLoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameBuffer = 1
	cfg.FinalFrameWait = 10 * time.Millisecond
	s := NewGameServer(cfg)
	require.True(t, s.Publish(frame(1, model.RUNNING)))

	assert.False(t, s.Publish(frame(2, model.OVER)))
}

func TestSlowViewerStillGetsGameOver(t *testing.T) {
	vs := newViewerSession(2)
	vs.deliver(frame(1, model.RUNNING))
	vs.deliver(frame(2, model.RUNNING))
	vs.deliver(frame(3, model.RUNNING))
	assert.Equal(t, 1, vs.DebugDropped)

	vs.deliver(frame(4, model.OVER))

	assert.Equal(t, 2, vs.DebugDropped)
	require.Len(t, vs.MessagesToSend, 2)
	assert.Equal(t, 2, (<-vs.MessagesToSend).Tick)
	last := <-vs.MessagesToSend
	assert.Equal(t, 4, last.Tick)
	assert.True(t, last.Over())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "WATCH", VS_WATCH.Name())
	assert.Equal(t, "n/a:0", ViewerSessionState(0).Name())
	assert.Equal(t, http.StatusOK, VIEWER_READY.ToHttp())
	assert.Equal(t, http.StatusServiceUnavailable, VIEWER_REJECTED.ToHttp())
	assert.Panics(t, func() { ResponseCode(9).ToHttp() })
}
