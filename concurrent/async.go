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
	"sync"

	"github.com/botobag/graphqlservice/concurrent/future"
)

// taskFuture implements the Future returned by Async.
type taskFuture struct {
	handle TaskHandle

	mutex sync.Mutex
	// The Waker from the latest Poll that saw the task incomplete.
	waker future.Waker
	// True once a goroutine is waiting on handle.Done to wake the poller.
	watching bool
}

// Poll implements future.Future.
func (f *taskFuture) Poll(waker future.Waker) (future.PollResult, error) {
	select {
	case <-f.handle.Done():
		return f.handle.AwaitResult(0)
	default:
	}

	f.mutex.Lock()
	f.waker = waker
	if !f.watching {
		f.watching = true
		go f.watch()
	}
	f.mutex.Unlock()

	return future.PollResultPending, nil
}

func (f *taskFuture) watch() {
	<-f.handle.Done()

	f.mutex.Lock()
	waker := f.waker
	f.mutex.Unlock()

	waker.Wake()
}

// Async submits task to executor and returns a Future that completes with the result of the task.
// The waker given to the latest poll is woken when the task completes.
func Async(executor Executor, task Task) future.Future {
	handle, err := executor.Submit(task)
	if err != nil {
		return future.Err(err)
	}
	return &taskFuture{
		handle: handle,
	}
}

// AsyncFunc is a shorthand for Async(executor, TaskFunc(fn)).
func AsyncFunc(executor Executor, fn func() (interface{}, error)) future.Future {
	return Async(executor, TaskFunc(fn))
}
