package workerpool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/drills/internal/log"
)

// Pool is a fixed-size set of workers consuming a shared task queue.
type Pool struct {
	mu       sync.Mutex
	cond     *sync.Cond // signalled on enqueue and shutdown
	idle     *sync.Cond // broadcast when the pool has nothing queued or running
	tasks    []Task
	running  int
	disposed bool

	workers sync.WaitGroup
	size    int
	opts    options
	metrics *metrics

	submitted uint64
	completed uint64
	failed    uint64

	disposeOnce sync.Once
}

// New starts a pool with exactly workers goroutines.
func New(workers int, opts ...Option) (*Pool, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("New(%d): %w", workers, ErrInvalidWorkers)
	}
	o := options{name: "default"}
	for _, fn := range opts {
		fn(&o)
	}
	m, err := newMetrics(o.registerer, o.name)
	if err != nil {
		return nil, fmt.Errorf("New: register metrics: %w", err)
	}

	p := &Pool{size: workers, opts: o, metrics: m}
	p.cond = sync.NewCond(&p.mu)
	p.idle = sync.NewCond(&p.mu)

	p.workers.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work(i)
	}
	log.Verbosef("[pool]\t%s started with %d workers", o.name, workers)

	return p, nil
}

// Size returns the number of worker goroutines.
func (p *Pool) Size() int {
	return p.size
}

// Enqueue appends task to the queue and wakes one worker.
func (p *Pool) Enqueue(task Task) error {
	if task == nil {
		return ErrNilTask
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return ErrPoolDisposed
	}
	p.tasks = append(p.tasks, task)
	p.submitted++
	p.metrics.observe(outcomeEnqueue)
	p.metrics.setDepth(len(p.tasks))
	p.cond.Signal()

	return nil
}

// Go is Enqueue for tasks that cannot fail.
func (p *Pool) Go(fn func()) error {
	if fn == nil {
		return ErrNilTask
	}

	return p.Enqueue(func() error {
		fn()
		return nil
	})
}

// Wait blocks until the queue is empty and no task is running.
func (p *Pool) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.tasks) > 0 || p.running > 0 {
		p.idle.Wait()
	}
}

// Dispose stops accepting tasks, lets workers drain the queue and joins them.
// Calling Dispose more than once is safe.
func (p *Pool) Dispose() {
	p.disposeOnce.Do(func() {
		p.mu.Lock()
		p.disposed = true
		p.cond.Broadcast()
		p.mu.Unlock()

		p.workers.Wait()
		log.Verbosef("[pool]\t%s disposed after %d tasks", p.opts.name, p.completed)
	})
}

// Stats returns the current task counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{
		Submitted: p.submitted,
		Completed: p.completed,
		Failed:    p.failed,
		Queued:    len(p.tasks),
	}
}

func (p *Pool) work(id int) {
	defer p.workers.Done()
	for {
		p.mu.Lock()
		for len(p.tasks) == 0 && !p.disposed {
			p.cond.Wait()
		}
		if len(p.tasks) == 0 {
			// disposed and drained
			p.mu.Unlock()
			return
		}
		task := p.tasks[0]
		p.tasks[0] = nil
		p.tasks = p.tasks[1:]
		p.running++
		p.metrics.setDepth(len(p.tasks))
		p.mu.Unlock()

		err := run(task)
		p.report(id, err)

		p.mu.Lock()
		p.running--
		p.completed++
		if err != nil {
			p.failed++
		}
		if len(p.tasks) == 0 && p.running == 0 {
			p.idle.Broadcast()
		}
		p.mu.Unlock()
	}
}

func (p *Pool) report(worker int, err error) {
	if err == nil {
		p.metrics.observe(outcomeOK)
		return
	}
	var pe *PanicError
	if errors.As(err, &pe) {
		p.metrics.observe(outcomePanic)
	} else {
		p.metrics.observe(outcomeError)
	}
	log.Printf("[pool]\t%s worker %d: %v", p.opts.name, worker, err)
	if p.opts.onError != nil {
		p.opts.onError(err)
	}
}

// run executes task, converting a panic into *PanicError.
func run(task Task) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()

	return task()
}
