package server

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// maxConsoleMessages bounds the history served by /api/console
const maxConsoleMessages = 200

// ConsoleMessage is one render log line as served by /api/console
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "progress"
}

// WebLogger forwards render log lines to the server log and, without
// blocking, to a console channel. Lines are dropped when the channel is full.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger whose lines are tagged with renderID
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.consoleChan == nil {
		return
	}

	level := "info"
	if strings.HasPrefix(message, "Progress:") {
		level = "progress"
	}

	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
	}
}

// consoleLog collects WebLogger output from every render into a bounded history
type consoleLog struct {
	incoming chan ConsoleMessage
	mu       sync.Mutex
	history  []ConsoleMessage
}

func newConsoleLog(buffer int) *consoleLog {
	return &consoleLog{incoming: make(chan ConsoleMessage, buffer)}
}

// snapshot moves pending messages into the history, keeps the newest
// maxConsoleMessages and returns a copy, oldest first
func (c *consoleLog) snapshot() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	for drained := false; !drained; {
		select {
		case msg := <-c.incoming:
			c.history = append(c.history, msg)
		default:
			drained = true
		}
	}

	if len(c.history) > maxConsoleMessages {
		c.history = c.history[len(c.history)-maxConsoleMessages:]
	}
	history := make([]ConsoleMessage, len(c.history))
	copy(history, c.history)
	return history
}
