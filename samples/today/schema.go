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
	"github.com/botobag/graphqlservice/graphql/introspection"
)

// Names of the types registered by AddTypesToSchema
const (
	NodeTypeName                  = "Node"
	QueryTypeName                 = "Query"
	PageInfoTypeName              = "PageInfo"
	AppointmentEdgeTypeName       = "AppointmentEdge"
	AppointmentConnectionTypeName = "AppointmentConnection"
	TaskEdgeTypeName              = "TaskEdge"
	TaskConnectionTypeName        = "TaskConnection"
	FolderEdgeTypeName            = "FolderEdge"
	FolderConnectionTypeName      = "FolderConnection"
	CompleteTaskInputTypeName     = "CompleteTaskInput"
	CompleteTaskPayloadTypeName   = "CompleteTaskPayload"
	MutationTypeName              = "Mutation"
	SubscriptionTypeName          = "Subscription"
	AppointmentTypeName           = "Appointment"
	TaskTypeName                  = "Task"
	FolderTypeName                = "Folder"
	NestedTypeTypeName            = "NestedType"
	TaskStateTypeName             = "TaskState"
	UnionTypeTypeName             = "UnionType"
	ItemCursorTypeName            = "ItemCursor"
	DateTimeTypeName              = "DateTime"
)

// AddTypesToSchema registers the types of the sample and sets the root operation types. The
// builder must have the standard types.
func AddTypesToSchema(builder *introspection.SchemaBuilder) {
	var (
		typeID      = builder.LookupType(introspection.IDTypeName)
		typeInt     = builder.LookupType(introspection.IntTypeName)
		typeString  = builder.LookupType(introspection.StringTypeName)
		typeBoolean = builder.LookupType(introspection.BooleanTypeName)

		typeItemCursor = introspection.NewScalarType(ItemCursorTypeName, "")
		typeDateTime   = introspection.NewScalarType(DateTimeTypeName, "")

		typeNode                  = introspection.NewInterfaceType(NodeTypeName, "Node interface for Relay support")
		typeQuery                 = introspection.NewObjectType(QueryTypeName, "Root Query type")
		typePageInfo              = introspection.NewObjectType(PageInfoTypeName, "")
		typeAppointmentEdge       = introspection.NewObjectType(AppointmentEdgeTypeName, "")
		typeAppointmentConnection = introspection.NewObjectType(AppointmentConnectionTypeName, "")
		typeTaskEdge              = introspection.NewObjectType(TaskEdgeTypeName, "")
		typeTaskConnection        = introspection.NewObjectType(TaskConnectionTypeName, "")
		typeFolderEdge            = introspection.NewObjectType(FolderEdgeTypeName, "")
		typeFolderConnection      = introspection.NewObjectType(FolderConnectionTypeName, "")
		typeCompleteTaskInput     = introspection.NewInputObjectType(CompleteTaskInputTypeName, "")
		typeCompleteTaskPayload   = introspection.NewObjectType(CompleteTaskPayloadTypeName, "")
		typeMutation              = introspection.NewObjectType(MutationTypeName, "")
		typeSubscription          = introspection.NewObjectType(SubscriptionTypeName, "")
		typeAppointment           = introspection.NewObjectType(AppointmentTypeName, "")
		typeTask                  = introspection.NewObjectType(TaskTypeName, "")
		typeFolder                = introspection.NewObjectType(FolderTypeName, "")
		typeNestedType            = introspection.NewObjectType(NestedTypeTypeName, "Infinitely nestable type which can be used with nested fragments to test directive handling")
		typeTaskState             = introspection.NewEnumType(TaskStateTypeName, "")
		typeUnionType             = introspection.NewUnionType(UnionTypeTypeName, "")
	)

	for _, t := range []*introspection.Type{
		typeItemCursor,
		typeDateTime,
		typeNode,
		typeQuery,
		typePageInfo,
		typeAppointmentEdge,
		typeAppointmentConnection,
		typeTaskEdge,
		typeTaskConnection,
		typeFolderEdge,
		typeFolderConnection,
		typeCompleteTaskInput,
		typeCompleteTaskPayload,
		typeMutation,
		typeSubscription,
		typeAppointment,
		typeTask,
		typeFolder,
		typeNestedType,
		typeTaskState,
		typeUnionType,
	} {
		builder.MustAddType(t.Name(), t)
	}

	nonNull := builder.NonNullOf
	listOf := builder.ListOf

	field := func(name string, t *introspection.Type, args ...*introspection.InputValue) *introspection.Field {
		return introspection.NewField(introspection.FieldConfig{
			Name: name,
			Args: args,
			Type: t,
		})
	}
	arg := func(name string, t *introspection.Type) *introspection.InputValue {
		return introspection.NewInputValue(introspection.InputValueConfig{
			Name: name,
			Type: t,
		})
	}
	connectionArgs := func() []*introspection.InputValue {
		return []*introspection.InputValue{
			arg("first", typeInt),
			arg("after", typeItemCursor),
			arg("last", typeInt),
			arg("before", typeItemCursor),
		}
	}
	idsArg := arg("ids", nonNull(listOf(nonNull(typeID))))

	typeNode.AddFields(field("id", nonNull(typeID)))

	typeQuery.AddFields(
		field("node", typeNode, arg("id", nonNull(typeID))),
		field("appointments", nonNull(typeAppointmentConnection), connectionArgs()...),
		field("tasks", nonNull(typeTaskConnection), connectionArgs()...),
		field("unreadCounts", nonNull(typeFolderConnection), connectionArgs()...),
		field("appointmentsById", nonNull(listOf(typeAppointment)), idsArg),
		field("tasksById", nonNull(listOf(typeTask)), idsArg),
		field("unreadCountsById", nonNull(listOf(typeFolder)), idsArg),
		field("nested", nonNull(typeNestedType)),
	)

	typePageInfo.AddFields(
		field("hasNextPage", nonNull(typeBoolean)),
		field("hasPreviousPage", nonNull(typeBoolean)),
	)

	for _, connection := range []struct {
		edge       *introspection.Type
		connection *introspection.Type
		node       *introspection.Type
	}{
		{typeAppointmentEdge, typeAppointmentConnection, typeAppointment},
		{typeTaskEdge, typeTaskConnection, typeTask},
		{typeFolderEdge, typeFolderConnection, typeFolder},
	} {
		connection.edge.AddFields(
			field("node", connection.node),
			field("cursor", nonNull(typeItemCursor)),
		)
		connection.connection.AddFields(
			field("pageInfo", nonNull(typePageInfo)),
			field("edges", listOf(connection.edge)),
		)
	}

	typeCompleteTaskInput.AddInputValues(
		arg("id", nonNull(typeID)),
		introspection.NewInputValue(introspection.InputValueConfig{
			Name:         "isComplete",
			Type:         typeBoolean,
			DefaultValue: "true",
		}),
		arg("clientMutationId", typeString),
	)

	typeCompleteTaskPayload.AddFields(
		field("task", typeTask),
		field("clientMutationId", typeString),
	)

	typeMutation.AddFields(
		field("completeTask", nonNull(typeCompleteTaskPayload), arg("input", nonNull(typeCompleteTaskInput))),
	)

	typeSubscription.AddFields(
		field("nextAppointmentChange", typeAppointment),
		field("nodeChange", nonNull(typeNode), arg("id", nonNull(typeID))),
	)

	typeAppointment.AddInterfaces(typeNode)
	typeAppointment.AddFields(
		field("id", nonNull(typeID)),
		field("when", typeDateTime),
		field("subject", typeString),
		field("isNow", nonNull(typeBoolean)),
	)

	typeTask.AddInterfaces(typeNode)
	typeTask.AddFields(
		field("id", nonNull(typeID)),
		field("title", typeString),
		field("isComplete", nonNull(typeBoolean)),
	)

	typeFolder.AddInterfaces(typeNode)
	typeFolder.AddFields(
		field("id", nonNull(typeID)),
		field("name", typeString),
		field("unreadCount", nonNull(typeInt)),
	)

	typeNestedType.AddFields(
		introspection.NewField(introspection.FieldConfig{
			Name:        "depth",
			Description: "Depth of the nested element",
			Type:        nonNull(typeInt),
		}),
		introspection.NewField(introspection.FieldConfig{
			Name:        "nested",
			Description: "Link to the next level",
			Type:        nonNull(typeNestedType),
		}),
	)

	for _, state := range taskStates {
		typeTaskState.AddEnumValues(introspection.NewEnumValue(introspection.EnumValueConfig{
			Name:              state.name,
			DeprecationReason: state.deprecationReason,
		}))
	}

	typeUnionType.AddPossibleTypes(typeAppointment, typeTask, typeFolder)

	builder.SetQueryType(typeQuery)
	builder.SetMutationType(typeMutation)
	builder.SetSubscriptionType(typeSubscription)
}

// NewSchema builds a Schema with the standard types and the types of the sample.
func NewSchema(config introspection.SchemaBuilderConfig) (*introspection.Schema, error) {
	builder, err := introspection.NewSchemaBuilder(config)
	if err != nil {
		return nil, err
	}
	AddTypesToSchema(builder)
	return builder.Build()
}
