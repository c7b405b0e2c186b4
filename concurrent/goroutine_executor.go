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
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// GoroutineExecutorConfig contains configuration for GoroutineExecutor.
type GoroutineExecutorConfig struct {
	// Maximum number of tasks that run at the same time. Tasks submitted beyond this number wait for
	// a running one to finish.
	MaxConcurrency uint32
}

// Validate checks the configuration values.
func (config *GoroutineExecutorConfig) Validate() error {
	if config.MaxConcurrency == 0 {
		return fmt.Errorf("GoroutineExecutorConfig: MaxConcurrency must be a non-zero value")
	}
	return nil
}

// GoroutineExecutor runs every submitted task in its own goroutine while bounding the number of
// tasks that run concurrently.
type GoroutineExecutor struct {
	// Acquired by a task before it runs.
	slots chan struct{}

	// Tracks submitted tasks that haven't completed.
	pending sync.WaitGroup

	// Guards the fields below against concurrent Submit and Shutdown.
	mutex      sync.RWMutex
	shutdown   bool
	terminated bool
	// One channel per Shutdown call that is notified on termination
	terminations []chan bool
}

// GoroutineExecutor implements Executor.
var _ Executor = (*GoroutineExecutor)(nil)

// NewGoroutineExecutor creates a GoroutineExecutor from config.
func NewGoroutineExecutor(config GoroutineExecutorConfig) (*GoroutineExecutor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &GoroutineExecutor{
		slots: make(chan struct{}, config.MaxConcurrency),
	}, nil
}

// MustNewGoroutineExecutor is a convenience function equivalent to NewGoroutineExecutor but panics on
// failure instead of returning an error.
func MustNewGoroutineExecutor(config GoroutineExecutorConfig) *GoroutineExecutor {
	executor, err := NewGoroutineExecutor(config)
	if err != nil {
		panic(err)
	}
	return executor
}

// Submit implements Executor.
func (executor *GoroutineExecutor) Submit(task Task) (TaskHandle, error) {
	executor.mutex.RLock()
	defer executor.mutex.RUnlock()

	if executor.shutdown {
		return nil, ErrExecutorShutdown
	}

	handle := &goroutineTask{
		task: task,
		done: make(chan struct{}),
	}

	executor.pending.Add(1)
	go executor.run(handle)

	return handle, nil
}

func (executor *GoroutineExecutor) run(handle *goroutineTask) {
	defer executor.pending.Done()

	executor.slots <- struct{}{}
	defer func() {
		<-executor.slots
	}()

	if !atomic.CompareAndSwapInt32(&handle.state, taskStateQueued, taskStateRunning) {
		// Cancelled while waiting for a slot.
		return
	}

	handle.finish(runTask(handle.task))
}

// runTask calls task.Run and turns a panic into an error.
func runTask(task Task) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task.Run()
}

// Shutdown implements Executor.
func (executor *GoroutineExecutor) Shutdown() (<-chan bool, error) {
	executor.mutex.Lock()
	defer executor.mutex.Unlock()

	termination := make(chan bool, 1)
	if executor.terminated {
		termination <- true
		close(termination)
		return termination, nil
	}
	executor.terminations = append(executor.terminations, termination)

	if !executor.shutdown {
		executor.shutdown = true
		go executor.awaitTermination()
	}

	return termination, nil
}

// awaitTermination notifies the callers of Shutdown once every submitted task has completed.
func (executor *GoroutineExecutor) awaitTermination() {
	executor.pending.Wait()

	executor.mutex.Lock()
	executor.terminated = true
	terminations := executor.terminations
	executor.terminations = nil
	executor.mutex.Unlock()

	for _, termination := range terminations {
		termination <- true
		close(termination)
	}
}

// States of goroutineTask
const (
	taskStateQueued int32 = iota
	taskStateRunning
	taskStateCancelled
	taskStateCompleted
)

// goroutineTask implements TaskHandle for GoroutineExecutor.
type goroutineTask struct {
	task  Task
	state int32

	// Closed when result and err are set.
	done   chan struct{}
	result interface{}
	err    error
}

func (handle *goroutineTask) finish(result interface{}, err error) {
	handle.result, handle.err = result, err
	atomic.StoreInt32(&handle.state, taskStateCompleted)
	close(handle.done)
}

// Cancel implements TaskHandle.
func (handle *goroutineTask) Cancel() error {
	if atomic.CompareAndSwapInt32(&handle.state, taskStateQueued, taskStateCancelled) {
		handle.result, handle.err = nil, ErrTaskCancelled
		close(handle.done)
	}
	return nil
}

// Done implements TaskHandle.
func (handle *goroutineTask) Done() <-chan struct{} {
	return handle.done
}

// AwaitResult implements TaskHandle.
func (handle *goroutineTask) AwaitResult(timeout time.Duration) (interface{}, error) {
	if timeout <= 0 {
		<-handle.done
		return handle.result, handle.err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-handle.done:
		return handle.result, handle.err
	case <-timer.C:
		return nil, ErrAwaitTaskResultTimeout
	}
}
