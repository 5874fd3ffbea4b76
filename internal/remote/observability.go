package remote

import (
	"fmt"
	"io"
	"time"
)

// ChatCallEvent records metadata about a single chat backend invocation.
type ChatCallEvent struct {
	Endpoint  string
	Messages  int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about chat backend calls for logging and metrics.
type Observer interface {
	OnCallComplete(event ChatCallEvent)
}

// LogObserver writes chat call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event ChatCallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] chat_call endpoint=%s messages=%d latency_ms=%d status=%s\n",
		ts, event.Endpoint, event.Messages, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(ChatCallEvent) {}
