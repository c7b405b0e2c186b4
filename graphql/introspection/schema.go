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

package introspection

import (
	"context"
	"fmt"

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/service"
)

// Schema is the read-only registry produced by SchemaBuilder.Build. It owns every type of the graph
// and is safe for concurrent use.
type Schema struct {
	registry
}

// LookupType returns the type bound to name. It panics if there is no such type.
func (schema *Schema) LookupType(name string) *Type {
	return schema.lookupType("introspection.Schema.LookupType", name)
}

// FindType returns the type bound to name and whether it exists.
func (schema *Schema) FindType(name string) (*Type, bool) {
	return schema.findType(name)
}

// WrapType returns the LIST or NON_NULL wrapper of ofType that was created while the schema was
// being built. The cache is not filled after Build so asking for a wrapper that was never created
// panics.
func (schema *Schema) WrapType(kind TypeKind, ofType *Type) *Type {
	const op = graphql.Op("introspection.Schema.WrapType")
	wrapper, exists := schema.wrappersOf(op, kind)[ofType]
	if !exists {
		panic(graphql.NewError(
			fmt.Sprintf(`no %s wrapper of type "%s" was created while building the schema`, kind, ofType),
			op,
			graphql.ErrKindInternal))
	}
	return wrapper
}

// TypeNames returns the names of the registered types in insertion order.
func (schema *Schema) TypeNames() []string {
	return append([]string(nil), schema.names...)
}

// Types returns the registered types in insertion order.
func (schema *Schema) Types() []*Type {
	return append([]*Type(nil), schema.types...)
}

// QueryType returns the root type for query operations.
func (schema *Schema) QueryType() *Type {
	return schema.queryType
}

// MutationType returns the root type for mutation operations or nil.
func (schema *Schema) MutationType() *Type {
	return schema.mutationType
}

// SubscriptionType returns the root type for subscription operations or nil.
func (schema *Schema) SubscriptionType() *Type {
	return schema.subscriptionType
}

// Directives returns the directives in insertion order.
func (schema *Schema) Directives() []*Directive {
	return append([]*Directive(nil), schema.directives...)
}

// GetTypes resolves to the registered types ([]*Type) in insertion order.
func (schema *Schema) GetTypes(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(schema.Types())
}

// GetQueryType resolves to the query root type (*Type).
func (schema *Schema) GetQueryType(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(schema.queryType)
}

// GetMutationType resolves to the mutation root type (*Type) or nil.
func (schema *Schema) GetMutationType(ctx context.Context, params service.FieldParams) future.Future {
	return optionalType(schema.mutationType)
}

// GetSubscriptionType resolves to the subscription root type (*Type) or nil.
func (schema *Schema) GetSubscriptionType(ctx context.Context, params service.FieldParams) future.Future {
	return optionalType(schema.subscriptionType)
}

// GetDirectives resolves to the directives ([]*Directive).
func (schema *Schema) GetDirectives(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(schema.Directives())
}

// optionalType returns a future of t, or of an untyped nil when t is nil.
func optionalType(t *Type) future.Future {
	if t == nil {
		return future.Ready(nil)
	}
	return future.Ready(t)
}
