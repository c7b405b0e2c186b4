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

package dataloader

import (
	"fmt"
	"sync"

	"github.com/botobag/graphqlservice/concurrent/future"
)

// Task carries the key of one value requested from a DataLoader and receives the loaded value. A
// task is completed exactly once with either Complete or SetError.
type Task struct {
	key Key

	// Queue that the task was enqueued to. It is nil for tasks created by Prime.
	queue *taskQueue

	mu        sync.Mutex
	completed bool
	value     interface{}
	err       error

	// Wakers of the futures waiting for the task. Each future owns one slot.
	wakers []future.Waker
}

func newTask(queue *taskQueue, key Key) *Task {
	return &Task{
		key:   key,
		queue: queue,
	}
}

// Key returns the key of the value to be loaded.
func (t *Task) Key() Key {
	return t.key
}

// Completed returns true if the task has a value or an error.
func (t *Task) Completed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed
}

// Complete completes the task with the loaded value.
func (t *Task) Complete(value interface{}) error {
	return t.complete(value, nil)
}

// SetError completes the task with an error.
func (t *Task) SetError(err error) error {
	return t.complete(nil, err)
}

func (t *Task) complete(value interface{}, err error) error {
	t.mu.Lock()
	if t.completed {
		t.mu.Unlock()
		return fmt.Errorf("task for key %v was already completed", t.key)
	}
	t.completed = true
	t.value = value
	t.err = err
	wakers := t.wakers
	t.wakers = nil
	t.mu.Unlock()

	for _, waker := range wakers {
		if waker == nil {
			continue
		}
		if err := waker.Wake(); err != nil && t.queue != nil {
			t.queue.loader.logger.Logf("waker %T failed to wake the future of key %v: %s", waker, t.key, err)
		}
	}
	return nil
}

// newFuture returns a Future of the value loaded by the task.
func (t *Task) newFuture() future.Future {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.completed {
		if t.err != nil {
			return future.Err(t.err)
		}
		return future.Ready(t.value)
	}

	t.wakers = append(t.wakers, future.NopWaker)
	return &resultFuture{
		task: t,
		slot: len(t.wakers) - 1,
	}
}

// resultFuture is a Future of the value of a Task. The first poll of a pending task dispatches the
// queue containing the task, so every key requested before then is loaded in the same batch.
type resultFuture struct {
	task *Task
	slot int
}

var _ future.Future = (*resultFuture)(nil)

// Poll implements future.Future.
func (f *resultFuture) Poll(waker future.Waker) (future.PollResult, error) {
	task := f.task
	if queue := task.queue; queue != nil {
		queue.loader.dispatchQueue(queue)
	}

	task.mu.Lock()
	defer task.mu.Unlock()

	if task.completed {
		if task.err != nil {
			return nil, task.err
		}
		return task.value, nil
	}

	task.wakers[f.slot] = waker
	return future.PollResultPending, nil
}

// Batch is the list of tasks given to a BatchLoader.
type Batch []*Task

// Keys returns the key of every task in the batch.
func (batch Batch) Keys() []Key {
	keys := make([]Key, len(batch))
	for i, task := range batch {
		keys[i] = task.key
	}
	return keys
}
