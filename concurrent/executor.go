/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package concurrent

import (
	"errors"
	"time"
)

// Task is a unit of work run by an Executor. User resolvers that cannot answer in place are wrapped
// in a Task and submitted to an Executor.
type Task interface {
	// Run computes the result that is later made available through the TaskHandle.
	Run() (interface{}, error)
}

// The TaskFunc type is an adapter to allow the use of ordinary functions as a Task.
type TaskFunc func() (interface{}, error)

// TaskFunc implements Task.
var _ Task = (TaskFunc)(nil)

// Run implements Task. It calls f().
func (f TaskFunc) Run() (interface{}, error) {
	return f()
}

// Error values reported through TaskHandle and Executor.
var (
	// ErrTaskCancelled is the result of a task that was cancelled before it started.
	ErrTaskCancelled = errors.New("task was cancelled")
	// ErrAwaitTaskResultTimeout indicates AwaitResult ran out of time before the task completed.
	ErrAwaitTaskResultTimeout = errors.New("timeout while waiting task result")
	// ErrExecutorShutdown is returned by Submit after the executor was shut down.
	ErrExecutorShutdown = errors.New("executor has been shut down")
)

// TaskHandle tracks progress of a submitted Task.
type TaskHandle interface {
	// Cancel prevents the task from running if it hasn't started yet. A task that is already
	// running is not interrupted.
	Cancel() error

	// Done returns a channel that is closed once the task has a result (including cancellation).
	Done() <-chan struct{}

	// AwaitResult blocks until the task completes or timeout elapses. A non-positive timeout waits
	// without limit. Possible outcomes:
	//
	//  1. (nil, ErrTaskCancelled): the task was cancelled.
	//  2. (nil, ErrAwaitTaskResultTimeout): the task didn't complete in time.
	//  3. (any, any): the values returned from the Run method of the task.
	AwaitResult(timeout time.Duration) (interface{}, error)
}

// Executor runs submitted tasks.
type Executor interface {
	// Shutdown stops the executor from accepting new tasks. Tasks that were submitted earlier still
	// run. The returned channel receives a value once all of them have completed. Calling Shutdown
	// more than once is allowed.
	Shutdown() (terminated <-chan bool, err error)

	// Submit arranges task for execution and returns a handle to track it.
	Submit(task Task) (TaskHandle, error)
}
