// Package workerpool runs tasks on a fixed set of worker goroutines that pull
// from a shared FIFO queue.
//
// The queue is a slice guarded by a mutex and a condition variable: Enqueue
// appends a task and wakes one idle worker, workers sleep on the condition
// while the queue is empty, and Dispose flips the shutdown flag, wakes every
// worker and joins them once the queue has drained. There is no backpressure
// and no priority scheduling; the queue grows as needed.
//
// A task that returns an error or panics does not take its worker down. The
// failure is counted, logged, and handed to the optional error handler
// (panics arrive as *PanicError).
//
// Errors:
//
//   - ErrInvalidWorkers  New called with workers <= 0
//   - ErrNilTask         Enqueue called with a nil task
//   - ErrPoolDisposed    Enqueue called after Dispose
package workerpool
