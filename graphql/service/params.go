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

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/response"
)

// RequestState is opaque data associated with a request. The runtime passes it through to resolvers
// untouched.
type RequestState interface{}

// FieldParams carries what a resolver receives besides the context.
type FieldParams struct {
	// State associated with the request
	State RequestState

	// Arguments given to the field. It is a Map or null when the field takes no arguments.
	Arguments response.Value

	// Directives applied to the field in the request, keyed by directive name. It is a Map or null.
	FieldDirectives response.Value
}

// ResolverParams adds the location of the field being resolved to FieldParams.
type ResolverParams struct {
	FieldParams

	// Name of the field being resolved
	FieldName string

	// Path to the field in the response. Errors produced for the field are reported with it.
	Path graphql.ResponsePath
}

// Resolver computes the value of a field. It must not block: a value that takes time to compute is
// returned as a pending future.Future.
type Resolver func(ctx context.Context, params ResolverParams) future.Future

// ResolverMap maps field names to resolvers.
type ResolverMap map[string]Resolver
