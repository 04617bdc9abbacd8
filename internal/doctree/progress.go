package doctree

import "fmt"

// ProgressStatus is the lifecycle state of one file's processing.
type ProgressStatus int

const (
	ProgressWorking ProgressStatus = iota
	ProgressComplete
	ProgressFailed
)

// ProgressEvent describes the processing state of a single file.
type ProgressEvent struct {
	Path    string
	Status  ProgressStatus
	Message string
}

// ProgressReporter fans walk progress out through a buffered channel.
type ProgressReporter struct {
	ch chan ProgressEvent
}

// NewProgressReporter creates a reporter with a buffered channel of size 64.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{ch: make(chan ProgressEvent, 64)}
}

// Emit sends an event without blocking. If the channel is full the event is
// dropped; progress is advisory, never load-bearing.
func (pr *ProgressReporter) Emit(ev ProgressEvent) {
	select {
	case pr.ch <- ev:
	default:
	}
}

// Subscribe returns the read side of the event channel.
func (pr *ProgressReporter) Subscribe() <-chan ProgressEvent {
	return pr.ch
}

// Close closes the event channel.
func (pr *ProgressReporter) Close() {
	close(pr.ch)
}

// FormatProgress renders an event as a one-line status.
func FormatProgress(ev ProgressEvent) string {
	switch ev.Status {
	case ProgressWorking:
		return fmt.Sprintf("  ● %s...", ev.Path)
	case ProgressComplete:
		return fmt.Sprintf("  ✓ %s", ev.Path)
	case ProgressFailed:
		return fmt.Sprintf("  ✗ %s: %s", ev.Path, ev.Message)
	default:
		return fmt.Sprintf("  ? %s", ev.Path)
	}
}
