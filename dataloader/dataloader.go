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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql/service"
)

// Key identifies a value loaded by a DataLoader such as the id column of a table. Keys must be
// comparable unless the Cache maps them to comparable values.
type Key interface{}

// taskQueue collects the tasks requested between two dispatches.
type taskQueue struct {
	loader *DataLoader

	// Context of the first Load into the queue. It is given to BatchLoader unless the queue is
	// dispatched explicitly.
	ctx context.Context

	tasks Batch
}

// A DataLoader batches the requests for values by key and caches the loaded values.
//
// Load returns a pending Future. The queue of pending keys is dispatched to the BatchLoader either by
// an explicit Dispatch or by the first poll of any of the futures, so all keys requested before that
// are loaded in one batch (subject to MaxBatchSize).
type DataLoader struct {
	config Config
	logger service.Logger
	cache  Cache

	queueMutex sync.Mutex
	queue      *taskQueue
}

var errMissingKey = errors.New("must specify key to identify data to be loaded")

// New creates a DataLoader from config.
func New(config Config) (*DataLoader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	loader := &DataLoader{
		config: config,
		logger: config.Logger,
		cache:  config.Cache,
	}
	if loader.logger == nil {
		loader.logger = service.DefaultLogger{}
	}
	if loader.cache == nil {
		loader.cache = &DefaultCache{}
	}
	loader.queue = &taskQueue{loader: loader}
	return loader, nil
}

// MustNew is like New but panics on error.
func MustNew(config Config) *DataLoader {
	loader, err := New(config)
	if err != nil {
		panic(err)
	}
	return loader
}

// Load returns a Future of the value identified by key.
func (loader *DataLoader) Load(ctx context.Context, key Key) future.Future {
	if key == nil {
		return future.Err(errMissingKey)
	}

	if task := loader.cache.Get(key); task != nil {
		return task.newFuture()
	}

	loader.queueMutex.Lock()
	queue := loader.queue
	task := newTask(queue, key)
	if cached := loader.cache.Set(task); cached != task {
		// Requested concurrently by someone else.
		loader.queueMutex.Unlock()
		return cached.newFuture()
	}
	if len(queue.tasks) == 0 {
		queue.ctx = ctx
	}
	queue.tasks = append(queue.tasks, task)
	loader.queueMutex.Unlock()

	return task.newFuture()
}

// LoadMany returns a Future of the values identified by keys as an []interface{} in the order of
// keys. It fails with the first error of any key.
func (loader *DataLoader) LoadMany(ctx context.Context, keys ...Key) future.Future {
	futures := make([]future.Future, len(keys))
	for i, key := range keys {
		futures[i] = loader.Load(ctx, key)
	}
	return future.Join(futures...)
}

// Dispatch sends the pending keys to the BatchLoader with ctx.
func (loader *DataLoader) Dispatch(ctx context.Context) {
	loader.queueMutex.Lock()
	queue := loader.queue
	detached := loader.detachLocked(queue)
	loader.queueMutex.Unlock()

	if detached {
		loader.loadTasks(ctx, queue.tasks)
	}
}

// dispatchQueue dispatches queue with the context of its first Load if it is still the pending
// queue of the loader.
func (loader *DataLoader) dispatchQueue(queue *taskQueue) {
	loader.queueMutex.Lock()
	detached := loader.detachLocked(queue)
	loader.queueMutex.Unlock()

	if detached {
		loader.loadTasks(queue.ctx, queue.tasks)
	}
}

// detachLocked replaces queue with an empty queue. It returns false if queue is not the pending
// queue or has no tasks. queueMutex must be held.
func (loader *DataLoader) detachLocked(queue *taskQueue) bool {
	if queue != loader.queue || len(queue.tasks) == 0 {
		return false
	}
	loader.queue = &taskQueue{loader: loader}
	return true
}

// loadTasks splits tasks into batches of at most MaxBatchSize tasks and dispatches each.
func (loader *DataLoader) loadTasks(ctx context.Context, tasks Batch) {
	maxBatchSize := int(loader.config.MaxBatchSize)
	if maxBatchSize == 0 {
		maxBatchSize = len(tasks)
	}
	for len(tasks) > 0 {
		size := maxBatchSize
		if size > len(tasks) {
			size = len(tasks)
		}
		loader.dispatchBatch(ctx, tasks[:size:size])
		tasks = tasks[size:]
	}
}

// dispatchBatch loads batch with the Executor, or in place when there is none.
func (loader *DataLoader) dispatchBatch(ctx context.Context, batch Batch) {
	job := &batchLoadJob{
		ctx:    ctx,
		loader: loader,
		batch:  batch,
	}

	executor := loader.config.Executor
	if executor == nil {
		job.Run()
		return
	}

	if _, err := executor.Submit(job); err != nil {
		for _, task := range batch {
			task.SetError(err)
		}
	}
}

// Clear removes the value of key from the cache.
func (loader *DataLoader) Clear(key Key) {
	loader.cache.Delete(key)
}

// ClearAll empties the cache.
func (loader *DataLoader) ClearAll() {
	loader.cache.Clear()
}

// Prime adds value for key to the cache. Nothing changes if key is already cached.
func (loader *DataLoader) Prime(key Key, value interface{}) {
	task := newTask(nil, key)
	task.Complete(value)
	loader.cache.Set(task)
}

// PrimeError adds an error for key to the cache. Nothing changes if key is already cached.
func (loader *DataLoader) PrimeError(key Key, err error) {
	task := newTask(nil, key)
	task.SetError(err)
	loader.cache.Set(task)
}

// batchLoadJob runs the BatchLoader for a batch. It implements concurrent.Task.
type batchLoadJob struct {
	ctx    context.Context
	loader *DataLoader
	batch  Batch
}

// Run implements concurrent.Task.
func (job *batchLoadJob) Run() (interface{}, error) {
	loader := job.loader.config.BatchLoader
	loader.Load(job.ctx, job.batch)

	for _, task := range job.batch {
		if !task.Completed() {
			task.SetError(fmt.Errorf("%T must complete every task in the batch but it doesn't "+
				"complete the task that loads data at key %v", loader, task.Key()))
		}
	}
	return nil, nil
}
