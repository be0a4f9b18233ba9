package usecase

import "context"

// Task is a cancellable handle to an in-flight advisory request.
// A task cancelled before it completes reports context.Canceled and
// never delivers its result.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	result T
	err    error
}

func startTask[T any](ctx context.Context, fn func(ctx context.Context) T) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		result := fn(ctx)
		if err := ctx.Err(); err != nil {
			t.err = err
			return
		}
		t.result = result
	}()

	return t
}

// Cancel abandons the task. It is safe to call more than once.
func (t *Task[T]) Cancel() { t.cancel() }

// Done is closed once the task has finished or observed cancellation.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Wait blocks until the task finishes and returns its outcome.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.result, t.err
}
