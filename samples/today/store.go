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

package today

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/botobag/graphqlservice/concurrent"
	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/dataloader"
	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/service"
)

// StoreConfig configures a Store.
type StoreConfig struct {
	// Executor runs the connection getters and the batch loads in the background. When nil they
	// run in place.
	Executor concurrent.Executor

	// MaxBatchSize limits the number of ids loaded in one batch. Zero means unlimited.
	MaxBatchSize uint

	// Logger reports batch loads. It is service.DefaultLogger if not specified.
	Logger service.Logger
}

// Store keeps appointments, tasks and folders in memory and implements Query, Mutation and
// Subscription on top of them. Every node gets a random UUID as its id.
type Store struct {
	config StoreConfig
	logger service.Logger

	mutex        sync.RWMutex
	nodes        map[string]Node
	appointments []*memoryAppointment
	tasks        []*memoryTask
	folders      []*memoryFolder
}

// NewStore creates an empty Store.
func NewStore(config StoreConfig) *Store {
	store := &Store{
		config: config,
		logger: config.Logger,
		nodes:  map[string]Node{},
	}
	if store.logger == nil {
		store.logger = service.DefaultLogger{}
	}
	return store
}

// NewSampleStore creates a Store with one appointment, one task and one folder.
func NewSampleStore(config StoreConfig) *Store {
	store := NewStore(config)
	store.AddAppointment("tomorrow", "Lunch?", false)
	store.AddTask("Don't forget", TaskStateComplete)
	store.AddFolder(`"Fake" Inbox`, 3)
	return store
}

func newID() []byte {
	id := uuid.New()
	return id[:]
}

// AddAppointment adds an appointment and returns its id.
func (store *Store) AddAppointment(when string, subject string, isNow bool) []byte {
	appointment := &memoryAppointment{
		id:      newID(),
		when:    when,
		subject: subject,
		isNow:   isNow,
	}

	store.mutex.Lock()
	store.appointments = append(store.appointments, appointment)
	store.nodes[string(appointment.id)] = appointment
	store.mutex.Unlock()

	return appointment.id
}

// AddTask adds a task and returns its id.
func (store *Store) AddTask(title string, state TaskState) []byte {
	task := &memoryTask{
		store: store,
		id:    newID(),
		title: title,
		state: state,
	}

	store.mutex.Lock()
	store.tasks = append(store.tasks, task)
	store.nodes[string(task.id)] = task
	store.mutex.Unlock()

	return task.id
}

// AddFolder adds a folder and returns its id.
func (store *Store) AddFolder(name string, unreadCount int) []byte {
	folder := &memoryFolder{
		id:          newID(),
		name:        name,
		unreadCount: unreadCount,
	}

	store.mutex.Lock()
	store.folders = append(store.folders, folder)
	store.nodes[string(folder.id)] = folder
	store.mutex.Unlock()

	return folder.id
}

// TaskState returns the state of the task with id.
func (store *Store) TaskState(id []byte) (TaskState, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	task, ok := store.nodes[string(id)].(*memoryTask)
	if !ok {
		return 0, false
	}
	return task.state, true
}

// findNode returns the node with id.
func (store *Store) findNode(id []byte) (Node, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	node, exists := store.nodes[string(id)]
	return node, exists
}

// async runs fn with the executor or in place when there is none.
func (store *Store) async(fn func() (interface{}, error)) future.Future {
	if store.config.Executor == nil {
		value, err := fn()
		if err != nil {
			return future.Err(err)
		}
		return future.Ready(value)
	}
	return concurrent.AsyncFunc(store.config.Executor, fn)
}

// NewOperations creates the root objects served by the store. Each call starts a new request: the
// nodes loaded by id are cached until the next call.
func (store *Store) NewOperations(schema *introspection.Schema, tracer service.Tracer) (*Operations, error) {
	return NewOperations(OperationsConfig{
		Schema:       schema,
		Query:        &memoryQuery{store: store},
		Mutation:     &memoryMutation{store: store},
		Subscription: &memorySubscription{store: store},
		Tracer:       tracer,
		Logger:       store.logger,
	})
}

//===----------------------------------------------------------------------------------------====//
// Query
//===----------------------------------------------------------------------------------------====//

// idKey is a node id used as a dataloader key.
type idKey []byte

// CacheKey implements dataloader.KeyWithCacheKey.
func (key idKey) CacheKey() interface{} {
	return string(key)
}

// nodeFilter returns its argument if the node is of the kind served by a loader, or nil.
type nodeFilter func(node Node) interface{}

var nodeFilters = map[string]nodeFilter{
	"appointments": func(node Node) interface{} {
		if appointment, ok := node.(*memoryAppointment); ok {
			return appointment
		}
		return nil
	},
	"tasks": func(node Node) interface{} {
		if task, ok := node.(*memoryTask); ok {
			return task
		}
		return nil
	},
	"folders": func(node Node) interface{} {
		if folder, ok := node.(*memoryFolder); ok {
			return folder
		}
		return nil
	},
}

type memoryQuery struct {
	store   *Store
	loaders dataloader.Manager
}

var _ Query = (*memoryQuery)(nil)

// loadByID loads the nodes of a kind by ids in one batch.
func (query *memoryQuery) loadByID(ctx context.Context, kind string, ids [][]byte) future.Future {
	store := query.store
	loader, err := query.loaders.GetOrCreate(kind, func() (*dataloader.DataLoader, error) {
		filter := nodeFilters[kind]
		return dataloader.New(dataloader.Config{
			BatchLoader: dataloader.BatchLoadFunc(func(ctx context.Context, batch dataloader.Batch) {
				store.logger.Logf("loading %d %s in one batch", len(batch), kind)
				for _, task := range batch {
					node, exists := store.findNode(task.Key().(idKey))
					if !exists {
						task.Complete(nil)
						continue
					}
					task.Complete(filter(node))
				}
			}),
			Executor:     store.config.Executor,
			MaxBatchSize: store.config.MaxBatchSize,
			Cache:        &dataloader.CacheKeyCache{},
			Logger:       store.logger,
		})
	})
	if err != nil {
		return future.Err(err)
	}

	keys := make([]dataloader.Key, len(ids))
	for i, id := range ids {
		keys[i] = idKey(id)
	}
	return loader.LoadMany(ctx, keys...)
}

func (query *memoryQuery) GetNode(ctx context.Context, params service.FieldParams, id []byte) future.Future {
	node, exists := query.store.findNode(id)
	if !exists {
		return future.Ready(nil)
	}
	return future.Ready(node)
}

func (query *memoryQuery) GetAppointments(ctx context.Context, params service.FieldParams, args ConnectionArgs) future.Future {
	store := query.store
	return store.async(func() (interface{}, error) {
		store.mutex.RLock()
		appointments := append([]*memoryAppointment(nil), store.appointments...)
		store.mutex.RUnlock()
		return newConnection(appointments, args, func(edge *memoryEdge) AppointmentEdge { return edge })
	})
}

func (query *memoryQuery) GetTasks(ctx context.Context, params service.FieldParams, args ConnectionArgs) future.Future {
	store := query.store
	return store.async(func() (interface{}, error) {
		store.mutex.RLock()
		tasks := append([]*memoryTask(nil), store.tasks...)
		store.mutex.RUnlock()
		return newConnection(tasks, args, func(edge *memoryEdge) TaskEdge { return edge })
	})
}

func (query *memoryQuery) GetUnreadCounts(ctx context.Context, params service.FieldParams, args ConnectionArgs) future.Future {
	store := query.store
	return store.async(func() (interface{}, error) {
		store.mutex.RLock()
		folders := append([]*memoryFolder(nil), store.folders...)
		store.mutex.RUnlock()
		return newConnection(folders, args, func(edge *memoryEdge) FolderEdge { return edge })
	})
}

func (query *memoryQuery) GetAppointmentsByID(ctx context.Context, params service.FieldParams, ids [][]byte) future.Future {
	return future.Map(query.loadByID(ctx, "appointments", ids), func(value interface{}) (interface{}, error) {
		values := value.([]interface{})
		appointments := make([]Appointment, len(values))
		for i, v := range values {
			if v != nil {
				appointments[i] = v.(Appointment)
			}
		}
		return appointments, nil
	})
}

func (query *memoryQuery) GetTasksByID(ctx context.Context, params service.FieldParams, ids [][]byte) future.Future {
	return future.Map(query.loadByID(ctx, "tasks", ids), func(value interface{}) (interface{}, error) {
		values := value.([]interface{})
		tasks := make([]Task, len(values))
		for i, v := range values {
			if v != nil {
				tasks[i] = v.(Task)
			}
		}
		return tasks, nil
	})
}

func (query *memoryQuery) GetUnreadCountsByID(ctx context.Context, params service.FieldParams, ids [][]byte) future.Future {
	return future.Map(query.loadByID(ctx, "folders", ids), func(value interface{}) (interface{}, error) {
		values := value.([]interface{})
		folders := make([]Folder, len(values))
		for i, v := range values {
			if v != nil {
				folders[i] = v.(Folder)
			}
		}
		return folders, nil
	})
}

func (query *memoryQuery) GetNested(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(&memoryNested{depth: 1})
}

//===----------------------------------------------------------------------------------------====//
// Mutation and Subscription
//===----------------------------------------------------------------------------------------====//

type memoryMutation struct {
	store *Store
}

var _ Mutation = (*memoryMutation)(nil)

func (mutation *memoryMutation) GetCompleteTask(ctx context.Context, params service.FieldParams, input CompleteTaskInput) future.Future {
	store := mutation.store
	payload := &memoryCompleteTaskPayload{
		clientMutationID: input.ClientMutationID,
	}

	store.mutex.Lock()
	if task, ok := store.nodes[string(input.ID)].(*memoryTask); ok {
		if input.IsComplete {
			task.state = TaskStateComplete
		} else {
			task.state = TaskStateStarted
		}
		payload.task = task
	}
	store.mutex.Unlock()

	return future.Ready(payload)
}

type memorySubscription struct {
	store *Store
}

var _ Subscription = (*memorySubscription)(nil)

func (subscription *memorySubscription) GetNextAppointmentChange(ctx context.Context, params service.FieldParams) future.Future {
	store := subscription.store
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	if len(store.appointments) == 0 {
		return future.Ready(nil)
	}
	return future.Ready(store.appointments[0])
}

func (subscription *memorySubscription) GetNodeChange(ctx context.Context, params service.FieldParams, id []byte) future.Future {
	node, exists := subscription.store.findNode(id)
	if !exists {
		return future.Err(graphql.NewError(
			fmt.Sprintf("node %s does not exist", idString(id)),
			graphql.ErrKindExecution))
	}
	return future.Ready(node)
}

// idString formats an id as a UUID, or in hex if it isn't one.
func idString(id []byte) string {
	if parsed, err := uuid.FromBytes(id); err == nil {
		return parsed.String()
	}
	return fmt.Sprintf("%x", id)
}
