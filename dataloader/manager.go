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
	"fmt"
	"sync"
)

// Factory creates the DataLoader registered under a name in a Manager.
type Factory func() (*DataLoader, error)

// Manager holds the DataLoaders of one request by name. Loaders are created on first use.
type Manager struct {
	loaders sync.Map

	// Serializes DispatchAll.
	dispatchMutex sync.Mutex
}

// GetOrCreate returns the DataLoader registered under name, creating it with factory if there is
// none yet.
func (manager *Manager) GetOrCreate(name string, factory Factory) (*DataLoader, error) {
	if loader, found := manager.loaders.Load(name); found {
		return loader.(*DataLoader), nil
	}

	if factory == nil {
		return nil, fmt.Errorf(`DataLoader factory for "%s" is not provided`, name)
	}

	loader, err := factory()
	if err != nil {
		return nil, err
	}
	if loader == nil {
		return nil, fmt.Errorf(`DataLoader factory for "%s" returns a nil instance`, name)
	}

	registered, _ := manager.loaders.LoadOrStore(name, loader)
	return registered.(*DataLoader), nil
}

// DispatchAll dispatches the pending keys of every DataLoader.
func (manager *Manager) DispatchAll(ctx context.Context) {
	manager.dispatchMutex.Lock()
	defer manager.dispatchMutex.Unlock()

	manager.loaders.Range(func(_, value interface{}) bool {
		value.(*DataLoader).Dispatch(ctx)
		return true
	})
}
