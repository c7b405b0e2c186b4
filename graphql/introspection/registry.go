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
	"fmt"

	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/internal/util"
)

// registry is the state shared by SchemaBuilder and Schema: the named types in insertion order with
// an index by name, the wrapper cache, the directives and the root operation types.
type registry struct {
	names     []string
	types     []*Type
	typeIndex map[string]int

	// Wrappers keyed by the identity of the wrapped type. There is at most one LIST and one NON_NULL
	// wrapper for any type.
	listWrappers    map[*Type]*Type
	nonNullWrappers map[*Type]*Type
	// All wrappers in creation order
	wrappers []*Type

	directives []*Directive

	queryType        *Type
	mutationType     *Type
	subscriptionType *Type
}

func newRegistry() registry {
	return registry{
		typeIndex:       map[string]int{},
		listWrappers:    map[*Type]*Type{},
		nonNullWrappers: map[*Type]*Type{},
	}
}

// findType returns the type bound to name.
func (r *registry) findType(name string) (*Type, bool) {
	index, exists := r.typeIndex[name]
	if !exists {
		return nil, false
	}
	return r.types[index], true
}

// lookupType returns the type bound to name and panics if there is none.
func (r *registry) lookupType(op graphql.Op, name string) *Type {
	t, exists := r.findType(name)
	if !exists {
		panic(graphql.NewError(
			fmt.Sprintf(`unknown type "%s".`, name)+util.DidYouMean(name, r.names),
			op,
			graphql.ErrKindInternal))
	}
	return t
}

// wrappersOf returns the cache for wrappers of the kind and panics if kind is not a wrapper kind.
func (r *registry) wrappersOf(op graphql.Op, kind TypeKind) map[*Type]*Type {
	switch kind {
	case TypeKindList:
		return r.listWrappers
	case TypeKindNonNull:
		return r.nonNullWrappers
	}
	panic(graphql.NewError(
		fmt.Sprintf("cannot wrap a type with kind %s; only LIST and NON_NULL are wrappers", kind),
		op,
		graphql.ErrKindInternal))
}

// owns returns true if t is a registered named type or a cached wrapper.
func (r *registry) owns(t *Type) bool {
	if t == nil {
		return false
	}
	if t.kind.IsWrapper() {
		wrappers := r.listWrappers
		if t.kind == TypeKindNonNull {
			wrappers = r.nonNullWrappers
		}
		return wrappers[t.ofType] == t
	}
	bound, exists := r.findType(t.name)
	if exists && bound == t {
		return true
	}
	// A type may be registered under a name different from its own.
	for _, registered := range r.types {
		if registered == t {
			return true
		}
	}
	return false
}

// allTypes returns the named types in insertion order followed by the wrappers in creation order.
func (r *registry) allTypes() []*Type {
	result := make([]*Type, 0, len(r.types)+len(r.wrappers))
	result = append(result, r.types...)
	return append(result, r.wrappers...)
}
