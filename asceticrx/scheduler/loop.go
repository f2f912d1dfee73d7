// Package scheduler provides a single-threaded cooperative event loop.
//
// Tasks queued with After run one at a time on the goroutine that calls Run,
// in order of due time and then insertion. This is the execution context
// asynchronous signal producers schedule their deferred resolutions on.
package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var ErrAlreadyRunning = errors.New("scheduler: loop is already running")

type Loop struct {
	mu      sync.Mutex
	queue   taskQueue
	seq     uint64
	running bool
	wake    chan struct{}

	virtual bool
	now     time.Time

	name       string
	log        logrus.Ext1FieldLogger
	registerer prometheus.Registerer
	metrics    *metrics
}

func New(opts ...Option) *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		name: uuid.NewString(),
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.registerer != nil {
		l.metrics = newMetrics(l.registerer, l.name)
	}
	l.log = l.log.WithField("loop", l.name)
	return l
}

func (l *Loop) Name() string {
	return l.name
}

// Now returns the loop clock: the simulated time in virtual mode, the wall
// clock otherwise.
func (l *Loop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nowLocked()
}

func (l *Loop) nowLocked() time.Time {
	if l.virtual {
		return l.now
	}
	return time.Now()
}

// After queues fn to run once delay has elapsed on the loop clock. A zero
// delay runs fn after every task already due. Safe for concurrent use.
func (l *Loop) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	l.mu.Lock()
	l.seq++
	t := &task{due: l.nowLocked().Add(delay), seq: l.seq, fn: fn}
	heap.Push(&l.queue, t)
	pending := l.queue.Len()
	l.mu.Unlock()

	l.metrics.taskScheduled(pending)
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.Len()
}

// Run executes queued tasks until none is left. A task may queue further
// tasks; they run within the same call. Panics raised by a task are not
// recovered. If ctx is done while tasks are still queued, Run returns the
// context error and leaves those tasks queued.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return ErrAlreadyRunning
	}
	l.running = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	l.log.Debug("loop started")
	executed := 0
	for {
		if err := ctx.Err(); err != nil {
			return l.abandon(err)
		}
		t, wait, ok := l.next()
		if !ok {
			l.log.WithField("executed", executed).Debug("loop drained")
			return nil
		}
		if t == nil {
			if err := l.sleep(ctx, wait); err != nil {
				return l.abandon(err)
			}
			continue
		}
		l.log.WithFields(logrus.Fields{"seq": t.seq, "due": t.due}).Trace("running task")
		t.fn()
		executed++
		l.metrics.taskRun(l.Pending())
	}
}

func (l *Loop) abandon(err error) error {
	pending := l.Pending()
	if pending == 0 {
		return nil
	}
	l.log.WithField("pending", pending).Debug("loop interrupted")
	return errors.Wrapf(err, "scheduler: %d tasks left pending", pending)
}

// next pops the next due task. When the head of the queue is not due yet it
// returns a nil task and how long to wait for it.
func (l *Loop) next() (*task, time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.queue.Len() == 0 {
		return nil, 0, false
	}
	head := l.queue[0]
	if l.virtual {
		if head.due.After(l.now) {
			l.now = head.due
		}
	} else if wait := time.Until(head.due); wait > 0 {
		return nil, wait, true
	}
	return heap.Pop(&l.queue).(*task), 0, true
}

// sleep waits for wait to elapse, a new task to be queued or ctx to be done.
func (l *Loop) sleep(ctx context.Context, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.wake:
		return nil
	case <-timer.C:
		return nil
	}
}
