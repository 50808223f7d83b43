package server

import (
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	ENV_PORT        = "SNAKE_SPECTATE_PORT"
	ENV_MAX_VIEWERS = "SNAKE_SPECTATE_MAX_VIEWERS"
)

// Config of the spectator server. Port is empty when spectating is switched
// off. FinalFrameWait bounds how long Publish may block on the game over frame.
type Config struct {
	Port            string
	MaxViewers      int
	RegisterTimeout time.Duration
	FinalFrameWait  time.Duration
	FrameBuffer     int
	ViewerBuffer    int
}

func DefaultConfig() Config {
	return Config{
		MaxViewers:      16,
		RegisterTimeout: 200 * time.Millisecond,
		FinalFrameWait:  250 * time.Millisecond,
		FrameBuffer:     8,
		ViewerBuffer:    10,
	}
}

// ConfigFromEnv reads the spectator settings. A malformed number keeps the
// default and is logged, it never stops the game.
func ConfigFromEnv() Config {
	c := DefaultConfig()
	c.Port = os.Getenv(ENV_PORT)
	if c.Port == "" {
		log.Debugf("%s not set, spectating disabled", ENV_PORT)
	}
	if raw := os.Getenv(ENV_MAX_VIEWERS); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Warnf("ignoring %s=%q, defaulting to %d", ENV_MAX_VIEWERS, raw, c.MaxViewers)
		} else {
			c.MaxViewers = n
		}
	}
	return c
}

func (c Config) Enabled() bool {
	return c.Port != ""
}
