//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// TerminationSignals end the process; raw mode is restored before it exits
var TerminationSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGINT}

// SignalGuard restores the terminal and exits when a termination signal arrives
type SignalGuard struct {
	restore func()
	exit    func(code int)

	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSignalGuard creates a guard running restore, then exit with 128+signo
func NewSignalGuard(restore func(), exit func(code int)) *SignalGuard {
	return &SignalGuard{
		restore: restore,
		exit:    exit,
		sigCh:   make(chan os.Signal, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins listening for sigs, TerminationSignals when none are given
func (g *SignalGuard) Start(sigs ...os.Signal) {
	if len(sigs) == 0 {
		sigs = TerminationSignals
	}
	signal.Notify(g.sigCh, sigs...)
	go g.watchLoop()
}

// Stop stops listening and waits for the loop to exit
func (g *SignalGuard) Stop() {
	signal.Stop(g.sigCh)
	close(g.stopCh)
	<-g.doneCh
}

func (g *SignalGuard) watchLoop() {
	defer close(g.doneCh)

	select {
	case <-g.stopCh:
	case sig := <-g.sigCh:
		g.restore()
		g.exit(exitCode(sig))
	}
}

// exitCode follows the shell convention for death by signal
func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
