package main

import (
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snake/server"
)

const (
	ENV_LOG_LEVEL = "SNAKE_LOG_LEVEL"
	ENV_SEED      = "SNAKE_SEED"
)

type Config struct {
	LogLevel log.Level
	Seed     int64
	Spectate server.Config
}

// LoadConfig reads the environment once at startup. Game rules are
// constants and cannot be changed here.
func LoadConfig() Config {
	c := Config{
		LogLevel: log.InfoLevel,
		Seed:     time.Now().UnixNano(),
	}
	if raw := os.Getenv(ENV_LOG_LEVEL); raw == "" {
		log.Printf("Defaulting to log level %s", c.LogLevel)
	} else if level, err := log.ParseLevel(raw); err != nil {
		log.Warnf("ignoring %s: %v", ENV_LOG_LEVEL, err)
	} else {
		c.LogLevel = level
	}
	if raw := os.Getenv(ENV_SEED); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warnf("ignoring %s=%q, using a random seed", ENV_SEED, raw)
		} else {
			c.Seed = seed
		}
	}
	c.Spectate = server.ConfigFromEnv()
	return c
}
