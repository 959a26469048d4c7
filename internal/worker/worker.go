// Package worker bridges concurrent HTTP handlers to the single-threaded
// fusion/journal/construction pipeline: one FIFO queue, one goroutine, so
// the subset cache and fusion trackers are touched without locking.
package worker

import (
	"errors"
	"time"
)

// ErrTimeout is returned when a job is still waiting in the queue once its
// processing ceiling has passed. Trackers are never touched in that case:
// the job is skipped rather than run, so the snapshot is dropped cleanly.
var ErrTimeout = errors.New("worker: processing ceiling exceeded before the job started")

type job struct {
	run      func() (interface{}, error)
	deadline time.Time
	done     chan result
}

type result struct {
	value interface{}
	err   error
}

// Queue is a single-worker FIFO job queue.
type Queue struct {
	jobs    chan job
	timeout time.Duration
}

// New starts the single background worker goroutine. timeout is the
// per-request processing ceiling: a job still queued once it has elapsed
// is skipped (not run), never partially applied.
func New(timeout time.Duration) *Queue {
	q := &Queue{jobs: make(chan job, 256), timeout: timeout}
	go q.run()
	return q
}

func (q *Queue) run() {
	for j := range q.jobs {
		if time.Now().After(j.deadline) {
			j.done <- result{err: ErrTimeout}
			continue
		}
		value, err := j.run()
		j.done <- result{value: value, err: err}
	}
}

// Submit enqueues fn and blocks until it completes. A caller whose HTTP
// request later disconnects does not affect this call: fn always runs to
// completion once started, so fusion/journal state advances consistently;
// it is the caller's responsibility to discard a response it can no
// longer deliver.
func (q *Queue) Submit(fn func() (interface{}, error)) (interface{}, error) {
	j := job{run: fn, deadline: time.Now().Add(q.timeout), done: make(chan result, 1)}
	q.jobs <- j
	r := <-j.done
	return r.value, r.err
}
