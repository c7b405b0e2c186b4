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

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/internal/util"
)

// TypeNameFieldName is the name of the meta field every object answers with its type name.
const TypeNameFieldName = "__typename"

// ObjectConfig provides the definition of an Object.
type ObjectConfig struct {
	// TypeNames lists the name of the object type first followed by the names of the interfaces and
	// unions that the object can be resolved as.
	TypeNames []string

	// Resolvers for the fields of the object
	Resolvers ResolverMap

	// Trivial marks every field of the object as trivial for Tracer. It is set for objects whose
	// fields are answered in place, for example the introspection objects.
	Trivial bool

	// Tracer is NopTracer if not specified.
	Tracer Tracer

	// Logger is DefaultLogger if not specified.
	Logger Logger
}

// Validate checks the configuration values.
func (config *ObjectConfig) Validate() error {
	const op = graphql.Op("service.ObjectConfig.Validate")
	if len(config.TypeNames) == 0 || len(config.TypeNames[0]) == 0 {
		return graphql.NewError("object must have a type name", op, graphql.ErrKindInternal)
	}
	for name, resolver := range config.Resolvers {
		if resolver == nil {
			return graphql.NewError(
				fmt.Sprintf(`resolver for field "%s" of "%s" is nil`, name, config.TypeNames[0]),
				op,
				graphql.ErrKindInternal)
		}
	}
	return nil
}

// Object resolves the fields of a value of one object type.
type Object struct {
	typeNames []string
	resolvers ResolverMap
	trivial   bool
	tracer    Tracer
	logger    Logger
}

// NewObject creates an Object from config.
func NewObject(config ObjectConfig) (*Object, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	object := &Object{
		typeNames: config.TypeNames,
		resolvers: config.Resolvers,
		trivial:   config.Trivial,
		tracer:    config.Tracer,
		logger:    config.Logger,
	}
	if object.tracer == nil {
		object.tracer = NopTracer{}
	}
	if object.logger == nil {
		object.logger = DefaultLogger{}
	}
	return object, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config ObjectConfig) *Object {
	object, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return object
}

// TypeName returns the name of the object type.
func (object *Object) TypeName() string {
	return object.typeNames[0]
}

// MatchesType returns true if the object can be resolved as the named type, which is either the
// object type itself or one of its interfaces or unions. Fragment type conditions are checked with
// it.
func (object *Object) MatchesType(typeName string) bool {
	for _, name := range object.typeNames {
		if name == typeName {
			return true
		}
	}
	return false
}

// FieldNames returns the names of the fields that have a resolver in sorted order.
func (object *Object) FieldNames() []string {
	names := make([]string, 0, len(object.resolvers))
	for name := range object.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves the named field. Failures are reported through the returned future:
//
//	* an unknown field name fails with an execution error;
//	* an error from the resolver is passed through unchanged;
//	* a panic in the resolver is logged and fails the future.
func (object *Object) Resolve(ctx context.Context, fieldName string, params FieldParams) future.Future {
	return object.ResolveAt(ctx, fieldName, params, graphql.ResponsePath{})
}

// ResolveAt is Resolve for a field at the given path of parent fields. The path reported with errors
// is parentPath followed by fieldName.
func (object *Object) ResolveAt(ctx context.Context, fieldName string, params FieldParams, parentPath graphql.ResponsePath) future.Future {
	path := parentPath.WithFieldName(fieldName)

	if fieldName == TypeNameFieldName {
		return future.Ready(object.TypeName())
	}

	resolver, exists := object.resolvers[fieldName]
	if !exists {
		message := fmt.Sprintf(`Cannot query field "%s" on type "%s".`, fieldName, object.TypeName()) +
			util.DidYouMean(fieldName, object.FieldNames())
		return future.Err(graphql.NewError(message, path, graphql.ErrKindExecution))
	}

	ctx, finish := object.tracer.TraceField(ctx, object.TypeName(), fieldName, object.trivial, params.Arguments)

	result := object.call(ctx, resolver, ResolverParams{
		FieldParams: params,
		FieldName:   fieldName,
		Path:        path,
	})

	return &tracedFuture{
		input:  result,
		finish: finish,
	}
}

func (object *Object) call(ctx context.Context, resolver Resolver, params ResolverParams) (result future.Future) {
	defer func() {
		if r := recover(); r != nil {
			object.logger.LogPanic(ctx, r)
			result = future.Err(graphql.NewError(
				fmt.Sprintf("panic occurred while resolving %s.%s: %v", object.TypeName(), params.FieldName, r),
				params.Path,
				graphql.ErrKindExecution))
		}
	}()

	result = resolver(ctx, params)
	if result == nil {
		result = future.Ready(nil)
	}
	return result
}

// tracedFuture reports completion of the input future to a TraceFieldFinishFunc.
type tracedFuture struct {
	input    future.Future
	finish   TraceFieldFinishFunc
	finished bool
}

// Poll implements future.Future.
func (f *tracedFuture) Poll(waker future.Waker) (future.PollResult, error) {
	result, err := f.input.Poll(waker)
	if !f.finished && (err != nil || !future.IsPending(result)) {
		f.finished = true
		f.finish(err)
	}
	return result, err
}
