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

	"github.com/botobag/graphqlservice/concurrent"
	"github.com/botobag/graphqlservice/graphql/service"
)

// BatchLoader loads the values for a batch of tasks. Every task in the batch must be completed
// with either Complete or SetError; tasks left incomplete fail with an error.
type BatchLoader interface {
	Load(ctx context.Context, batch Batch)
}

// The BatchLoadFunc type is an adapter to allow the use of ordinary functions as BatchLoader.
type BatchLoadFunc func(ctx context.Context, batch Batch)

// Load implements BatchLoader by calling f(ctx, batch).
func (f BatchLoadFunc) Load(ctx context.Context, batch Batch) {
	f(ctx, batch)
}

// Config specifies how a DataLoader fetches and caches data.
type Config struct {
	// (Required) BatchLoader fetches the values of the keys requested from the loader.
	BatchLoader BatchLoader

	// (Optional) Executor runs the batch loads. When nil, a batch is loaded in the goroutine that
	// dispatches it.
	Executor concurrent.Executor

	// (Optional) MaxBatchSize limits the number of tasks given to BatchLoader at once. Zero means
	// unlimited; one disables batching.
	MaxBatchSize uint

	// (Optional) Cache stores the tasks by key. When nil a DefaultCache is used. Set it to NoCache
	// to load every key each time it is requested.
	Cache Cache

	// (Optional) Logger reports wakers that fail to wake. It is service.DefaultLogger if not
	// specified.
	Logger service.Logger
}

var errMissingBatchLoader = errors.New("batch loader is required to construct a DataLoader")

// Validate checks the configuration values.
func (config *Config) Validate() error {
	if config.BatchLoader == nil {
		return errMissingBatchLoader
	}
	return nil
}
