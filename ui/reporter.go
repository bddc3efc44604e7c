package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ytmux-cli/ytmux/icon"
	"github.com/ytmux-cli/ytmux/pipeline"
	"github.com/ytmux-cli/ytmux/style"
)

// spinnerFrames cycles while a blocking stage is in flight.
var spinnerFrames = []string{"/", "-", "\\", "|"}

const spinnerInterval = 120 * time.Millisecond

// ConsoleReporter renders pipeline transitions as single-line progress
// indicators. Blocking stages get an animated spinner, terminal states a mark.
type ConsoleReporter struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// Transition implements pipeline.Reporter.
func (r *ConsoleReporter) Transition(state pipeline.State, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.halt()

	switch state {
	case pipeline.StateResolved:
		fmt.Printf("%s Resolved %s\n", icon.Get(icon.Success), style.Bold(detail))
	case pipeline.StateRetrieving:
		r.spin(fmt.Sprintf("%s Downloading %s stream", icon.Get(icon.Video), detail))
	case pipeline.StateMuxing:
		r.spin(fmt.Sprintf("%s Muxing %s streams", icon.Get(icon.Mux), detail))
	case pipeline.StateCleaning:
		r.spin(fmt.Sprintf("%s Removing temporary artifacts", icon.Get(icon.Trash)))
	case pipeline.StateDone:
		fmt.Printf("%s Saved to %s\n", icon.Get(icon.Success), style.Bold(detail))
	case pipeline.StateFailed:
		// The failure itself is reported by the command layer.
	}
}

// spin starts the spinner goroutine for one message. Caller holds the lock.
func (r *ConsoleReporter) spin(message string) {
	r.stop = make(chan struct{})
	r.done = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)

		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-stop:
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(message)+2))
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", message, spinnerFrames[frame%len(spinnerFrames)])
				frame++
			}
		}
	}(r.stop, r.done)
}

// halt stops the active spinner, if any, and waits for its line to be erased.
// Caller holds the lock.
func (r *ConsoleReporter) halt() {
	if r.stop == nil {
		return
	}

	close(r.stop)
	<-r.done
	r.stop = nil
	r.done = nil
}
