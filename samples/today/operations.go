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
	"fmt"

	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/service"
)

// OperationsConfig provides the implementations of the root types.
type OperationsConfig struct {
	// Schema built with AddTypesToSchema. It answers __schema and __type on the query type.
	Schema *introspection.Schema

	Query        Query
	Mutation     Mutation
	Subscription Subscription

	// Tracer traces the fields of the root types. It is service.NopTracer if not specified.
	Tracer service.Tracer

	// Logger receives recovered resolver panics. It is service.DefaultLogger if not specified.
	Logger service.Logger
}

// Validate checks the configuration values.
func (config *OperationsConfig) Validate() error {
	const op = graphql.Op("today.OperationsConfig.Validate")
	switch {
	case config.Schema == nil:
		return graphql.NewError("schema is required", op, graphql.ErrKindInternal)
	case config.Query == nil:
		return graphql.NewError("query implementation is required", op, graphql.ErrKindInternal)
	case config.Mutation == nil:
		return graphql.NewError("mutation implementation is required", op, graphql.ErrKindInternal)
	case config.Subscription == nil:
		return graphql.NewError("subscription implementation is required", op, graphql.ErrKindInternal)
	}
	return nil
}

// Operations bundles the root objects of the three operation types.
type Operations struct {
	roots map[string]*service.Object
}

// NewOperations creates the root objects from config.
func NewOperations(config OperationsConfig) (*Operations, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	factory := &objectFactory{
		tracer: config.Tracer,
		logger: config.Logger,
	}

	return &Operations{
		roots: map[string]*service.Object{
			"query":        factory.newQuery(config.Query, config.Schema),
			"mutation":     factory.newMutation(config.Mutation),
			"subscription": factory.newSubscription(config.Subscription),
		},
	}, nil
}

// MustNewOperations is like NewOperations but panics on error.
func MustNewOperations(config OperationsConfig) *Operations {
	operations, err := NewOperations(config)
	if err != nil {
		panic(err)
	}
	return operations
}

// Query returns the root object of query operations.
func (operations *Operations) Query() *service.Object {
	return operations.roots["query"]
}

// Mutation returns the root object of mutation operations.
func (operations *Operations) Mutation() *service.Object {
	return operations.roots["mutation"]
}

// Subscription returns the root object of subscription operations.
func (operations *Operations) Subscription() *service.Object {
	return operations.roots["subscription"]
}

// Root returns the root object for the operation type "query", "mutation" or "subscription".
func (operations *Operations) Root(operationType string) (*service.Object, error) {
	root, exists := operations.roots[operationType]
	if !exists {
		return nil, graphql.NewError(
			fmt.Sprintf(`unknown operation type "%s"`, operationType),
			graphql.Op("today.Operations.Root"),
			graphql.ErrKindValidation)
	}
	return root, nil
}
