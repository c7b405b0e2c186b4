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

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"
)

// optionalString resolves to s or to nil if s is empty.
func optionalString(s string) future.Future {
	if len(s) == 0 {
		return future.Ready(nil)
	}
	return future.Ready(s)
}

type memoryAppointment struct {
	id      []byte
	when    string
	subject string
	isNow   bool
}

var _ Appointment = (*memoryAppointment)(nil)

func (appointment *memoryAppointment) GetID(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(appointment.id)
}

func (appointment *memoryAppointment) GetWhen(ctx context.Context, params service.FieldParams) future.Future {
	if len(appointment.when) == 0 {
		return future.Ready(nil)
	}
	return future.Ready(response.NewString(appointment.when))
}

func (appointment *memoryAppointment) GetSubject(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(appointment.subject)
}

func (appointment *memoryAppointment) GetIsNow(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(appointment.isNow)
}

type memoryTask struct {
	store *Store
	id    []byte
	title string

	// Guarded by store.mutex
	state TaskState
}

var _ Task = (*memoryTask)(nil)

func (task *memoryTask) GetID(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(task.id)
}

func (task *memoryTask) GetTitle(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(task.title)
}

func (task *memoryTask) GetIsComplete(ctx context.Context, params service.FieldParams) future.Future {
	task.store.mutex.RLock()
	defer task.store.mutex.RUnlock()
	return future.Ready(task.state == TaskStateComplete)
}

type memoryFolder struct {
	id          []byte
	name        string
	unreadCount int
}

var _ Folder = (*memoryFolder)(nil)

func (folder *memoryFolder) GetID(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(folder.id)
}

func (folder *memoryFolder) GetName(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(folder.name)
}

func (folder *memoryFolder) GetUnreadCount(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(folder.unreadCount)
}

type memoryNested struct {
	depth int
}

var _ NestedType = (*memoryNested)(nil)

func (nested *memoryNested) GetDepth(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(nested.depth)
}

func (nested *memoryNested) GetNested(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(&memoryNested{depth: nested.depth + 1})
}

type memoryCompleteTaskPayload struct {
	task             *memoryTask
	clientMutationID *string
}

var _ CompleteTaskPayload = (*memoryCompleteTaskPayload)(nil)

func (payload *memoryCompleteTaskPayload) GetTask(ctx context.Context, params service.FieldParams) future.Future {
	if payload.task == nil {
		return future.Ready(nil)
	}
	return future.Ready(payload.task)
}

func (payload *memoryCompleteTaskPayload) GetClientMutationID(ctx context.Context, params service.FieldParams) future.Future {
	if payload.clientMutationID == nil {
		return future.Ready(nil)
	}
	return future.Ready(*payload.clientMutationID)
}

//===----------------------------------------------------------------------------------------====//
// Connections
//===----------------------------------------------------------------------------------------====//

type memoryPageInfo struct {
	hasNextPage     bool
	hasPreviousPage bool
}

var _ PageInfo = (*memoryPageInfo)(nil)

func (pageInfo *memoryPageInfo) GetHasNextPage(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(pageInfo.hasNextPage)
}

func (pageInfo *memoryPageInfo) GetHasPreviousPage(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(pageInfo.hasPreviousPage)
}

// memoryEdge serves the edges of all connections. The cursor of an edge is the index of its node
// in the store.
type memoryEdge struct {
	node   interface{}
	cursor response.Value
}

func (edge *memoryEdge) GetNode(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(edge.node)
}

func (edge *memoryEdge) GetCursor(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(edge.cursor)
}

// memoryConnection serves all connections. edges holds []AppointmentEdge, []TaskEdge or
// []FolderEdge.
type memoryConnection struct {
	pageInfo *memoryPageInfo
	edges    interface{}
}

var (
	_ AppointmentConnection = (*memoryConnection)(nil)
	_ TaskConnection        = (*memoryConnection)(nil)
	_ FolderConnection      = (*memoryConnection)(nil)
)

func (connection *memoryConnection) GetPageInfo(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(connection.pageInfo)
}

func (connection *memoryConnection) GetEdges(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(connection.edges)
}

// newConnection returns the page of nodes selected by args.
func newConnection[N any, E any](nodes []N, args ConnectionArgs, newEdge func(edge *memoryEdge) E) (*memoryConnection, error) {
	start, end, err := paginate(len(nodes), args)
	if err != nil {
		return nil, err
	}

	edges := make([]E, 0, end-start)
	for i := start; i < end; i++ {
		edges = append(edges, newEdge(&memoryEdge{
			node:   nodes[i],
			cursor: response.NewInt(i),
		}))
	}

	return &memoryConnection{
		pageInfo: &memoryPageInfo{
			hasNextPage:     end < len(nodes),
			hasPreviousPage: start > 0,
		},
		edges: edges,
	}, nil
}

// paginate returns the range [start, end) of n items selected by args. Cursors are item indices.
func paginate(n int, args ConnectionArgs) (start int, end int, err error) {
	cursor := func(name string, value response.Value) (int, bool, error) {
		if value.IsNull() {
			return 0, false, nil
		}
		i, ok := value.IntValue()
		if !ok {
			return 0, false, graphql.NewError(
				fmt.Sprintf(`Argument "%s" has invalid value: expected an item cursor.`, name),
				graphql.ErrKindCoercion)
		}
		return i, true, nil
	}
	count := func(name string, value *int) error {
		if value != nil && *value < 0 {
			return graphql.NewError(
				fmt.Sprintf(`Argument "%s" must not be negative.`, name),
				graphql.ErrKindCoercion)
		}
		return nil
	}

	start, end = 0, n

	after, hasAfter, err := cursor("after", args.After)
	if err != nil {
		return 0, 0, err
	}
	if hasAfter && after+1 > start {
		start = after + 1
	}

	before, hasBefore, err := cursor("before", args.Before)
	if err != nil {
		return 0, 0, err
	}
	if hasBefore && before < end {
		end = before
		if end < 0 {
			end = 0
		}
	}

	if start > end {
		start = end
	}

	if err := count("first", args.First); err != nil {
		return 0, 0, err
	}
	if args.First != nil && start+*args.First < end {
		end = start + *args.First
	}

	if err := count("last", args.Last); err != nil {
		return 0, 0, err
	}
	if args.Last != nil && end-*args.Last > start {
		start = end - *args.Last
	}

	return start, end, nil
}
