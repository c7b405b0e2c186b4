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
	"sync"
)

// Cache stores the tasks of a DataLoader by key. All methods must be safe for concurrent use.
type Cache interface {
	// Get returns the task for key or nil.
	Get(key Key) *Task

	// Set adds task unless a task with the same key exists. It returns the task in the cache
	// afterwards.
	Set(task *Task) *Task

	// Delete removes the task for key.
	Delete(key Key)

	// Clear removes every task.
	Clear()
}

// DefaultCache is the Cache used when Config.Cache is not set.
type DefaultCache struct {
	m sync.Map
}

var _ Cache = (*DefaultCache)(nil)

// Get implements Cache.
func (cache *DefaultCache) Get(key Key) *Task {
	task, ok := cache.m.Load(key)
	if !ok {
		return nil
	}
	return task.(*Task)
}

// Set implements Cache.
func (cache *DefaultCache) Set(task *Task) *Task {
	t, _ := cache.m.LoadOrStore(task.Key(), task)
	return t.(*Task)
}

// Delete implements Cache.
func (cache *DefaultCache) Delete(key Key) {
	cache.m.Delete(key)
}

// Clear implements Cache.
func (cache *DefaultCache) Clear() {
	cache.m.Range(func(key, _ interface{}) bool {
		cache.m.Delete(key)
		return true
	})
}

// KeyWithCacheKey is a Key that is not comparable (such as a []byte) and provides a comparable
// value to be cached by.
type KeyWithCacheKey interface {
	CacheKey() interface{}
}

// CacheKeyCache is a DefaultCache for keys that implement KeyWithCacheKey.
type CacheKeyCache struct {
	DefaultCache
}

var _ Cache = (*CacheKeyCache)(nil)

// Get implements Cache.
func (cache *CacheKeyCache) Get(key Key) *Task {
	return cache.DefaultCache.Get(key.(KeyWithCacheKey).CacheKey())
}

// Set implements Cache.
func (cache *CacheKeyCache) Set(task *Task) *Task {
	t, _ := cache.m.LoadOrStore(task.Key().(KeyWithCacheKey).CacheKey(), task)
	return t.(*Task)
}

// Delete implements Cache.
func (cache *CacheKeyCache) Delete(key Key) {
	cache.DefaultCache.Delete(key.(KeyWithCacheKey).CacheKey())
}

type noCache struct{}

func (noCache) Get(key Key) *Task { return nil }
func (noCache) Set(task *Task) *Task { return task }
func (noCache) Delete(key Key) {}
func (noCache) Clear() {}

// NoCache disables the cache of a DataLoader when given to Config.Cache.
var NoCache Cache = noCache{}
