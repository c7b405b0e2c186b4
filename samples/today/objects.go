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
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"
)

// objectFactory adapts the getter interfaces to service.Objects. Every Object it creates shares the
// tracer and the logger.
type objectFactory struct {
	tracer service.Tracer
	logger service.Logger
}

func (factory *objectFactory) newObject(typeNames []string, trivial bool, resolvers service.ResolverMap) *service.Object {
	return service.MustNewObject(service.ObjectConfig{
		TypeNames: typeNames,
		Resolvers: resolvers,
		Trivial:   trivial,
		Tracer:    factory.tracer,
		Logger:    factory.logger,
	})
}

// objectOf returns a MapFunc that adapts a resolved T (or nil) with newObject.
func objectOf[T any](newObject func(T) *service.Object) future.MapFunc {
	return func(value interface{}) (interface{}, error) {
		if value == nil {
			return nil, nil
		}
		return newObject(value.(T)), nil
	}
}

// listOf returns a MapFunc that adapts every item of a resolved []T (or nil) with newObject. Nil
// items stay nil.
func listOf[T any](newObject func(T) *service.Object) future.MapFunc {
	return func(value interface{}) (interface{}, error) {
		if value == nil {
			return nil, nil
		}
		items := value.([]T)
		result := make([]interface{}, len(items))
		for i, item := range items {
			if any(item) != nil {
				result[i] = newObject(item)
			}
		}
		return result, nil
	}
}

// idValue maps a resolved []byte to an ID value.
func idValue(value interface{}) (interface{}, error) {
	return response.NewID(value.([]byte)), nil
}

// node adapts a resolved Node (or nil) to the Object of its concrete type.
func (factory *objectFactory) node(value interface{}) (interface{}, error) {
	switch node := value.(type) {
	case nil:
		return nil, nil
	case Appointment:
		return factory.newAppointment(node), nil
	case Task:
		return factory.newTask(node), nil
	case Folder:
		return factory.newFolder(node), nil
	}
	return nil, graphql.NewError(
		fmt.Sprintf("%T doesn't implement any of the types that implement %s", value, NodeTypeName),
		graphql.ErrKindExecution)
}

// connectionArgs converts the pagination arguments.
func connectionArgs(args response.Value) (ConnectionArgs, error) {
	var (
		result ConnectionArgs
		err    error
	)

	if result.First, err = service.OptionalArgumentInt(args, "first"); err != nil {
		return result, err
	}
	if result.Last, err = service.OptionalArgumentInt(args, "last"); err != nil {
		return result, err
	}
	result.After, _ = args.Find("after")
	result.Before, _ = args.Find("before")

	return result, nil
}

func (factory *objectFactory) newQuery(query Query, schema *introspection.Schema) *service.Object {
	resolvers := service.ResolverMap{
		"node": func(ctx context.Context, params service.ResolverParams) future.Future {
			id, err := service.ArgumentID(params.Arguments, "id")
			if err != nil {
				return future.Err(err)
			}
			return future.Map(query.GetNode(ctx, params.FieldParams, id), factory.node)
		},

		"appointments": func(ctx context.Context, params service.ResolverParams) future.Future {
			args, err := connectionArgs(params.Arguments)
			if err != nil {
				return future.Err(err)
			}
			return future.Map(query.GetAppointments(ctx, params.FieldParams, args),
				objectOf(factory.newAppointmentConnection))
		},

		"tasks": func(ctx context.Context, params service.ResolverParams) future.Future {
			args, err := connectionArgs(params.Arguments)
			if err != nil {
				return future.Err(err)
			}
			return future.Map(query.GetTasks(ctx, params.FieldParams, args),
				objectOf(factory.newTaskConnection))
		},

		"unreadCounts": func(ctx context.Context, params service.ResolverParams) future.Future {
			args, err := connectionArgs(params.Arguments)
			if err != nil {
				return future.Err(err)
			}
			return future.Map(query.GetUnreadCounts(ctx, params.FieldParams, args),
				objectOf(factory.newFolderConnection))
		},

		"appointmentsById": func(ctx context.Context, params service.ResolverParams) future.Future {
			ids, err := service.ArgumentIDList(params.Arguments, "ids")
			if err != nil {
				return future.Err(err)
			}
			return future.Map(query.GetAppointmentsByID(ctx, params.FieldParams, ids),
				listOf(factory.newAppointment))
		},

		"tasksById": func(ctx context.Context, params service.ResolverParams) future.Future {
			ids, err := service.ArgumentIDList(params.Arguments, "ids")
			if err != nil {
				return future.Err(err)
			}
			return future.Map(query.GetTasksByID(ctx, params.FieldParams, ids), listOf(factory.newTask))
		},

		"unreadCountsById": func(ctx context.Context, params service.ResolverParams) future.Future {
			ids, err := service.ArgumentIDList(params.Arguments, "ids")
			if err != nil {
				return future.Err(err)
			}
			return future.Map(query.GetUnreadCountsByID(ctx, params.FieldParams, ids), listOf(factory.newFolder))
		},

		"nested": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(query.GetNested(ctx, params.FieldParams), objectOf(factory.newNestedType))
		},
	}

	for name, resolver := range introspection.MetaResolvers(schema) {
		resolvers[name] = resolver
	}

	return factory.newObject([]string{QueryTypeName}, false, resolvers)
}

func (factory *objectFactory) newPageInfo(pageInfo PageInfo) *service.Object {
	return factory.newObject([]string{PageInfoTypeName}, true, service.ResolverMap{
		"hasNextPage": func(ctx context.Context, params service.ResolverParams) future.Future {
			return pageInfo.GetHasNextPage(ctx, params.FieldParams)
		},
		"hasPreviousPage": func(ctx context.Context, params service.ResolverParams) future.Future {
			return pageInfo.GetHasPreviousPage(ctx, params.FieldParams)
		},
	})
}

// edge is the method set shared by AppointmentEdge, TaskEdge and FolderEdge.
type edge interface {
	GetNode(ctx context.Context, params service.FieldParams) future.Future
	GetCursor(ctx context.Context, params service.FieldParams) future.Future
}

// connection is the method set shared by the connection types.
type connection interface {
	GetPageInfo(ctx context.Context, params service.FieldParams) future.Future
	GetEdges(ctx context.Context, params service.FieldParams) future.Future
}

// edgeResolvers returns the resolvers of an edge type whose node is adapted by nodeObject.
func edgeResolvers(edge edge, nodeObject future.MapFunc) service.ResolverMap {
	return service.ResolverMap{
		"node": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(edge.GetNode(ctx, params.FieldParams), nodeObject)
		},
		"cursor": func(ctx context.Context, params service.ResolverParams) future.Future {
			return edge.GetCursor(ctx, params.FieldParams)
		},
	}
}

// connectionResolvers returns the resolvers of a connection type whose edges are adapted by
// edgeObjects.
func (factory *objectFactory) connectionResolvers(connection connection, edgeObjects future.MapFunc) service.ResolverMap {
	return service.ResolverMap{
		"pageInfo": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(connection.GetPageInfo(ctx, params.FieldParams), objectOf(factory.newPageInfo))
		},
		"edges": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(connection.GetEdges(ctx, params.FieldParams), edgeObjects)
		},
	}
}

func (factory *objectFactory) newAppointmentEdge(edge AppointmentEdge) *service.Object {
	return factory.newObject([]string{AppointmentEdgeTypeName}, true,
		edgeResolvers(edge, objectOf(factory.newAppointment)))
}

func (factory *objectFactory) newAppointmentConnection(connection AppointmentConnection) *service.Object {
	return factory.newObject([]string{AppointmentConnectionTypeName}, true,
		factory.connectionResolvers(connection, listOf(factory.newAppointmentEdge)))
}

func (factory *objectFactory) newTaskEdge(edge TaskEdge) *service.Object {
	return factory.newObject([]string{TaskEdgeTypeName}, true,
		edgeResolvers(edge, objectOf(factory.newTask)))
}

func (factory *objectFactory) newTaskConnection(connection TaskConnection) *service.Object {
	return factory.newObject([]string{TaskConnectionTypeName}, true,
		factory.connectionResolvers(connection, listOf(factory.newTaskEdge)))
}

func (factory *objectFactory) newFolderEdge(edge FolderEdge) *service.Object {
	return factory.newObject([]string{FolderEdgeTypeName}, true,
		edgeResolvers(edge, objectOf(factory.newFolder)))
}

func (factory *objectFactory) newFolderConnection(connection FolderConnection) *service.Object {
	return factory.newObject([]string{FolderConnectionTypeName}, true,
		factory.connectionResolvers(connection, listOf(factory.newFolderEdge)))
}

func (factory *objectFactory) newCompleteTaskPayload(payload CompleteTaskPayload) *service.Object {
	return factory.newObject([]string{CompleteTaskPayloadTypeName}, true, service.ResolverMap{
		"task": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(payload.GetTask(ctx, params.FieldParams), objectOf(factory.newTask))
		},
		"clientMutationId": func(ctx context.Context, params service.ResolverParams) future.Future {
			return payload.GetClientMutationID(ctx, params.FieldParams)
		},
	})
}

func (factory *objectFactory) newMutation(mutation Mutation) *service.Object {
	return factory.newObject([]string{MutationTypeName}, false, service.ResolverMap{
		"completeTask": func(ctx context.Context, params service.ResolverParams) future.Future {
			value, err := service.ArgumentMap(params.Arguments, "input")
			if err != nil {
				return future.Err(err)
			}
			input, err := ConvertCompleteTaskInput(value)
			if err != nil {
				return future.Err(err)
			}
			return future.Map(mutation.GetCompleteTask(ctx, params.FieldParams, input),
				objectOf(factory.newCompleteTaskPayload))
		},
	})
}

func (factory *objectFactory) newSubscription(subscription Subscription) *service.Object {
	return factory.newObject([]string{SubscriptionTypeName}, false, service.ResolverMap{
		"nextAppointmentChange": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(subscription.GetNextAppointmentChange(ctx, params.FieldParams),
				objectOf(factory.newAppointment))
		},
		"nodeChange": func(ctx context.Context, params service.ResolverParams) future.Future {
			id, err := service.ArgumentID(params.Arguments, "id")
			if err != nil {
				return future.Err(err)
			}
			return future.Map(subscription.GetNodeChange(ctx, params.FieldParams, id), factory.node)
		},
	})
}

func (factory *objectFactory) newAppointment(appointment Appointment) *service.Object {
	return factory.newObject([]string{AppointmentTypeName, NodeTypeName, UnionTypeTypeName}, true, service.ResolverMap{
		"id": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(appointment.GetID(ctx, params.FieldParams), idValue)
		},
		"when": func(ctx context.Context, params service.ResolverParams) future.Future {
			return appointment.GetWhen(ctx, params.FieldParams)
		},
		"subject": func(ctx context.Context, params service.ResolverParams) future.Future {
			return appointment.GetSubject(ctx, params.FieldParams)
		},
		"isNow": func(ctx context.Context, params service.ResolverParams) future.Future {
			return appointment.GetIsNow(ctx, params.FieldParams)
		},
	})
}

func (factory *objectFactory) newTask(task Task) *service.Object {
	return factory.newObject([]string{TaskTypeName, NodeTypeName, UnionTypeTypeName}, true, service.ResolverMap{
		"id": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(task.GetID(ctx, params.FieldParams), idValue)
		},
		"title": func(ctx context.Context, params service.ResolverParams) future.Future {
			return task.GetTitle(ctx, params.FieldParams)
		},
		"isComplete": func(ctx context.Context, params service.ResolverParams) future.Future {
			return task.GetIsComplete(ctx, params.FieldParams)
		},
	})
}

func (factory *objectFactory) newFolder(folder Folder) *service.Object {
	return factory.newObject([]string{FolderTypeName, NodeTypeName, UnionTypeTypeName}, true, service.ResolverMap{
		"id": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(folder.GetID(ctx, params.FieldParams), idValue)
		},
		"name": func(ctx context.Context, params service.ResolverParams) future.Future {
			return folder.GetName(ctx, params.FieldParams)
		},
		"unreadCount": func(ctx context.Context, params service.ResolverParams) future.Future {
			return folder.GetUnreadCount(ctx, params.FieldParams)
		},
	})
}

func (factory *objectFactory) newNestedType(nested NestedType) *service.Object {
	return factory.newObject([]string{NestedTypeTypeName}, true, service.ResolverMap{
		"depth": func(ctx context.Context, params service.ResolverParams) future.Future {
			return nested.GetDepth(ctx, params.FieldParams)
		},
		"nested": func(ctx context.Context, params service.ResolverParams) future.Future {
			return future.Map(nested.GetNested(ctx, params.FieldParams), objectOf(factory.newNestedType))
		},
	})
}
