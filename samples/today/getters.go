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

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"
)

// The interfaces in this file are implemented to serve the sample schema. Each getter returns a
// Future of the value noted in its comment; a nullable field may resolve to nil.

// Node is implemented by Appointment, Task and Folder.
type Node interface {
	// GetID resolves to []byte.
	GetID(ctx context.Context, params service.FieldParams) future.Future
}

// ConnectionArgs are the pagination arguments of a connection field. After and Before are
// ItemCursor values and are null when not given.
type ConnectionArgs struct {
	First  *int
	After  response.Value
	Last   *int
	Before response.Value
}

// Query serves the root query type.
type Query interface {
	// GetNode resolves to a Node or nil.
	GetNode(ctx context.Context, params service.FieldParams, id []byte) future.Future
	// GetAppointments resolves to an AppointmentConnection.
	GetAppointments(ctx context.Context, params service.FieldParams, args ConnectionArgs) future.Future
	// GetTasks resolves to a TaskConnection.
	GetTasks(ctx context.Context, params service.FieldParams, args ConnectionArgs) future.Future
	// GetUnreadCounts resolves to a FolderConnection.
	GetUnreadCounts(ctx context.Context, params service.FieldParams, args ConnectionArgs) future.Future
	// GetAppointmentsByID resolves to []Appointment with a nil entry for each unknown id.
	GetAppointmentsByID(ctx context.Context, params service.FieldParams, ids [][]byte) future.Future
	// GetTasksByID resolves to []Task with a nil entry for each unknown id.
	GetTasksByID(ctx context.Context, params service.FieldParams, ids [][]byte) future.Future
	// GetUnreadCountsByID resolves to []Folder with a nil entry for each unknown id.
	GetUnreadCountsByID(ctx context.Context, params service.FieldParams, ids [][]byte) future.Future
	// GetNested resolves to a NestedType.
	GetNested(ctx context.Context, params service.FieldParams) future.Future
}

// PageInfo describes the position of a page in a connection.
type PageInfo interface {
	// GetHasNextPage resolves to bool.
	GetHasNextPage(ctx context.Context, params service.FieldParams) future.Future
	// GetHasPreviousPage resolves to bool.
	GetHasPreviousPage(ctx context.Context, params service.FieldParams) future.Future
}

// AppointmentEdge serves AppointmentEdge.
type AppointmentEdge interface {
	// GetNode resolves to an Appointment or nil.
	GetNode(ctx context.Context, params service.FieldParams) future.Future
	// GetCursor resolves to response.Value.
	GetCursor(ctx context.Context, params service.FieldParams) future.Future
}

// AppointmentConnection serves AppointmentConnection.
type AppointmentConnection interface {
	// GetPageInfo resolves to a PageInfo.
	GetPageInfo(ctx context.Context, params service.FieldParams) future.Future
	// GetEdges resolves to []AppointmentEdge or nil.
	GetEdges(ctx context.Context, params service.FieldParams) future.Future
}

// TaskEdge serves TaskEdge.
type TaskEdge interface {
	// GetNode resolves to a Task or nil.
	GetNode(ctx context.Context, params service.FieldParams) future.Future
	// GetCursor resolves to response.Value.
	GetCursor(ctx context.Context, params service.FieldParams) future.Future
}

// TaskConnection serves TaskConnection.
type TaskConnection interface {
	// GetPageInfo resolves to a PageInfo.
	GetPageInfo(ctx context.Context, params service.FieldParams) future.Future
	// GetEdges resolves to []TaskEdge or nil.
	GetEdges(ctx context.Context, params service.FieldParams) future.Future
}

// FolderEdge serves FolderEdge.
type FolderEdge interface {
	// GetNode resolves to a Folder or nil.
	GetNode(ctx context.Context, params service.FieldParams) future.Future
	// GetCursor resolves to response.Value.
	GetCursor(ctx context.Context, params service.FieldParams) future.Future
}

// FolderConnection serves FolderConnection.
type FolderConnection interface {
	// GetPageInfo resolves to a PageInfo.
	GetPageInfo(ctx context.Context, params service.FieldParams) future.Future
	// GetEdges resolves to []FolderEdge or nil.
	GetEdges(ctx context.Context, params service.FieldParams) future.Future
}

// CompleteTaskPayload is the result of the completeTask mutation.
type CompleteTaskPayload interface {
	// GetTask resolves to a Task or nil.
	GetTask(ctx context.Context, params service.FieldParams) future.Future
	// GetClientMutationID resolves to string or nil.
	GetClientMutationID(ctx context.Context, params service.FieldParams) future.Future
}

// Mutation serves the root mutation type.
type Mutation interface {
	// GetCompleteTask resolves to a CompleteTaskPayload.
	GetCompleteTask(ctx context.Context, params service.FieldParams, input CompleteTaskInput) future.Future
}

// Subscription serves the root subscription type.
type Subscription interface {
	// GetNextAppointmentChange resolves to an Appointment or nil.
	GetNextAppointmentChange(ctx context.Context, params service.FieldParams) future.Future
	// GetNodeChange resolves to a Node.
	GetNodeChange(ctx context.Context, params service.FieldParams, id []byte) future.Future
}

// Appointment serves Appointment.
type Appointment interface {
	Node
	// GetWhen resolves to a DateTime value (response.Value) or nil.
	GetWhen(ctx context.Context, params service.FieldParams) future.Future
	// GetSubject resolves to string or nil.
	GetSubject(ctx context.Context, params service.FieldParams) future.Future
	// GetIsNow resolves to bool.
	GetIsNow(ctx context.Context, params service.FieldParams) future.Future
}

// Task serves Task.
type Task interface {
	Node
	// GetTitle resolves to string or nil.
	GetTitle(ctx context.Context, params service.FieldParams) future.Future
	// GetIsComplete resolves to bool.
	GetIsComplete(ctx context.Context, params service.FieldParams) future.Future
}

// Folder serves Folder.
type Folder interface {
	Node
	// GetName resolves to string or nil.
	GetName(ctx context.Context, params service.FieldParams) future.Future
	// GetUnreadCount resolves to int.
	GetUnreadCount(ctx context.Context, params service.FieldParams) future.Future
}

// NestedType serves NestedType.
type NestedType interface {
	// GetDepth resolves to int.
	GetDepth(ctx context.Context, params service.FieldParams) future.Future
	// GetNested resolves to a NestedType.
	GetNested(ctx context.Context, params service.FieldParams) future.Future
}
