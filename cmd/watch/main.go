package main

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/snake/model"
	"github.com/zucenko/snake/render"
	"golang.org/x/term"
)

const ENV_WATCH_URL = "SNAKE_WATCH_URL"

func main() {
	url := os.Getenv(ENV_WATCH_URL)
	if url == "" {
		url = "ws://localhost:8080/watch"
		log.Printf("Defaulting to %s", url)
	}
	if err := watch(url, term.IsTerminal(int(os.Stdout.Fd()))); err != nil {
		log.Fatal(err)
	}
}

// watch prints frames until the game is over or the connection drops.
func watch(url string, board bool) error {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()
	log.Infof("watching %s", url)

	for {
		_, r, err := conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		var f model.Frame
		if err := gob.NewDecoder(r).Decode(&f); err != nil {
			return fmt.Errorf("decode frame: %w", err)
		}
		if board {
			// clear screen, cursor home
			fmt.Print("\033[2J\033[H" + render.ASCII(f))
		} else {
			log.WithFields(log.Fields{
				"tick":   f.Tick,
				"score":  f.Score,
				"length": f.BodyParts,
				"head":   fmt.Sprintf("%d,%d", f.Head.X, f.Head.Y),
				"state":  f.State.Name(),
			}).Info("frame")
		}
		if f.Over() {
			log.Infof("game over, score %d", f.Score)
			return nil
		}
	}
}
