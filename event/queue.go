// Package event delivers window events from the dispatch goroutine
// to the application.
package event

import (
	"context"
	"errors"
	"sync"

	"deedles.dev/wlwin/internal/ev"
	"deedles.dev/wlwin/window"
)

// ErrStopped is returned by Push after the queue has been stopped.
var ErrStopped = errors.New("event queue stopped")

// Queue is an unbounded queue of window events. Push never blocks for
// longer than it takes to hand the event to the queue, so it is safe
// to call from inside compositor event handlers.
type Queue struct {
	q    *ev.Queue[window.Event]
	done chan struct{}
	stop sync.Once
}

func New() *Queue {
	return &Queue{
		q:    ev.NewQueue[window.Event](),
		done: make(chan struct{}),
	}
}

// Push adds e to the queue.
func (q *Queue) Push(e window.Event) error {
	select {
	case <-q.done:
		return ErrStopped
	case q.q.Add() <- e:
		return nil
	}
}

// Drain calls f for every event that is ready without waiting for
// more. It returns the number of events handled.
func (q *Queue) Drain(f func(window.Event)) int {
	select {
	case batch := <-q.q.Get():
		return handle(batch, f)
	default:
		return 0
	}
}

// Wait blocks until at least one event is ready and then handles
// every ready event like Drain. It returns early if ctx is canceled or
// the queue is stopped.
func (q *Queue) Wait(ctx context.Context, f func(window.Event)) (int, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-q.done:
			return 0, ErrStopped
		case batch := <-q.q.Get():
			if n := handle(batch, f); n > 0 {
				return n, nil
			}
		}
	}
}

// Stop stops the queue. Events that have not been handled are
// discarded.
func (q *Queue) Stop() {
	q.stop.Do(func() {
		close(q.done)
		q.q.Stop()
	})
}

func handle(batch *ev.Batch[window.Event], f func(window.Event)) int {
	n := batch.Len()
	batch.Each(f)
	return n
}
