// Package ev batches values delivered from one goroutine so that
// they can be processed together on another.
package ev

import (
	"deedles.dev/xsync/cq"
)

// Queue is an unbounded queue whose contents are retrieved as
// Batches.
type Queue[T any] struct {
	q *cq.BulkQueue[T, *Batch[T]]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		q: cq.New(func(v []T) *Batch[T] {
			return &Batch[T]{items: v}
		}),
	}
}

// Add returns a channel that values can be sent to.
func (q *Queue[T]) Add() chan<- T {
	return q.q.Add()
}

// Get returns a channel that yields everything added since the last
// receive.
func (q *Queue[T]) Get() <-chan *Batch[T] {
	return q.q.Get()
}

func (q *Queue[T]) Stop() {
	q.q.Stop()
}

// Batch represents a series of values from a Queue.
type Batch[T any] struct {
	items []T
}

// Len returns the number of values that have not been processed.
func (b *Batch[T]) Len() int {
	return len(b.items)
}

// Each calls f for every value in the batch, in order, and empties
// the batch.
func (b *Batch[T]) Each(f func(T)) {
	for _, v := range b.items {
		f(v)
	}
	b.items = nil
}
