//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// ResizeEvent carries the new window size
type ResizeEvent struct {
	Rows int
	Cols int
}

// ResizeWatcher turns SIGWINCH into ResizeEvents
// Only the latest size is kept; an unconsumed event is replaced
type ResizeWatcher struct {
	fd      int
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewResizeWatcher creates a watcher querying the session's output terminal
func NewResizeWatcher(s *Session) *ResizeWatcher {
	return &ResizeWatcher{
		fd:      s.outFd,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins listening for SIGWINCH
func (r *ResizeWatcher) Start() {
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	go r.watchLoop()
}

// Stop stops listening and waits for the loop to exit
func (r *ResizeWatcher) Stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

// Events returns the resize event channel
func (r *ResizeWatcher) Events() <-chan ResizeEvent {
	return r.eventCh
}

func (r *ResizeWatcher) watchLoop() {
	defer close(r.doneCh)

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			if rows, cols := r.getSize(); rows > 0 && cols > 0 {
				r.publish(ResizeEvent{Rows: rows, Cols: cols})
			}
		}
	}
}

// publish sends ev, dropping a pending event the consumer has not read
func (r *ResizeWatcher) publish(ev ResizeEvent) {
	select {
	case r.eventCh <- ev:
	default:
		select {
		case <-r.eventCh:
		default:
		}
		r.eventCh <- ev
	}
}

func (r *ResizeWatcher) getSize() (int, int) {
	ws, err := unix.IoctlGetWinsize(r.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Row), int(ws.Col)
}
