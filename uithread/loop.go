// Package uithread provides a single UI thread for scene graph repaints.
//
// A Loop owns one goroutine locked to its OS thread. Closures posted from
// any goroutine run there one at a time, in the order they were posted.
// Loop implements sg.Dispatcher, so a root compound attached to a canvas
// can route its repaint requests through it:
//
//	loop := uithread.NewLoop()
//	defer loop.Close()
//	env := sg.NewEnv(sg.WithDispatcher(loop))
package uithread

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/sg"
)

// ErrClosed is returned when work is submitted to a stopped loop.
var ErrClosed = errors.New("uithread: loop closed")

// Loop is a FIFO work queue drained by a dedicated OS thread.
//
// Thread safety: Loop is safe for concurrent use.
type Loop struct {
	mu    sync.Mutex
	queue []func()

	// wake holds a token while the queue may be non-empty.
	wake chan struct{}

	// done signals the loop to drain and stop.
	done chan struct{}

	// stopped is closed when the loop goroutine has exited.
	stopped chan struct{}

	running atomic.Bool

	// thread is the OS thread id of the loop, or 0 once stopped.
	thread atomic.Int64
}

var _ sg.Dispatcher = (*Loop)(nil)

// NewLoop starts a loop and returns once its thread is running.
func NewLoop() *Loop {
	l := &Loop{
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	l.running.Store(true)

	ready := make(chan struct{})
	go l.run(ready)
	<-ready

	sg.Logger().Info("uithread: loop started", "thread", l.thread.Load())
	return l
}

// run is the loop goroutine. It never unlocks its thread, so the thread
// is discarded when the loop exits and its id cannot be reused by another
// goroutine while the Loop is still referenced.
func (l *Loop) run(ready chan<- struct{}) {
	runtime.LockOSThread()
	defer close(l.stopped)

	l.thread.Store(threadID())
	close(ready)

	for {
		select {
		case <-l.wake:
			l.drain()
		case <-l.done:
			l.drain()
			l.thread.Store(0)
			return
		}
	}
}

// drain runs queued work until the queue is empty.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		f := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.call(f)
	}
}

// call runs f, logging instead of dying if it panics.
func (l *Loop) call(f func()) {
	defer func() {
		if r := recover(); r != nil {
			sg.Logger().Error("uithread: task panicked", "panic", r)
		}
	}()
	f()
}

// IsOnUIThread reports whether the caller is running on the loop.
func (l *Loop) IsOnUIThread() bool {
	id := l.thread.Load()
	return id != 0 && id == threadID()
}

// RunOnUIThread runs f at once when called from the loop and queues it
// otherwise. It never blocks.
func (l *Loop) RunOnUIThread(f func()) {
	if l.IsOnUIThread() {
		l.call(f)
		return
	}
	l.Post(f)
}

// Post queues f to run after everything already queued. It reports false,
// dropping f, if the loop is closed.
func (l *Loop) Post(f func()) bool {
	if f == nil {
		return true
	}
	l.mu.Lock()
	if !l.running.Load() {
		l.mu.Unlock()
		sg.Logger().Warn("uithread: post after close dropped")
		return false
	}
	l.queue = append(l.queue, f)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Invoke runs f on the loop and waits for it to finish. Called from the
// loop itself it runs f directly.
func (l *Loop) Invoke(ctx context.Context, f func()) error {
	if l.IsOnUIThread() {
		l.call(f)
		return nil
	}
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		f()
	}) {
		return ErrClosed
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		// Close drains the queue, so f may still have run.
		select {
		case <-finished:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Flush waits until everything queued before the call has run.
func (l *Loop) Flush(ctx context.Context) error {
	return l.Invoke(ctx, func() {})
}

// Pending returns the number of queued closures.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// IsRunning reports whether the loop accepts work.
func (l *Loop) IsRunning() bool { return l.running.Load() }

// Close stops accepting work, runs what is already queued and stops the
// loop. Called from outside the loop it waits for the loop to exit.
// Close is safe to call multiple times.
func (l *Loop) Close() {
	l.mu.Lock()
	if !l.running.CompareAndSwap(true, false) {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	close(l.done)
	if !l.IsOnUIThread() {
		<-l.stopped
	}
	sg.Logger().Info("uithread: loop stopped")
}
