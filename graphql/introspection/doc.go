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

// Package introspection implements the self-describing type graph of a schema.
//
// A schema is assembled with a SchemaBuilder: types are created with the NewXXXType constructors,
// registered under their names with AddType and linked to each other with AddFields, AddInterfaces
// and friends. Links between types are plain pointers and may form cycles (an object type whose
// field returns the object type itself, or __Type whose ofType field is a __Type). The registry is
// the only owner and enumerator of the types: List and NonNull wrappers are created through
// WrapType, which returns the same wrapper every time it is asked to wrap the same type.
//
// Build validates the graph, freezes every type and returns a Schema. A Schema is read-only and can
// be shared between goroutines without locking.
//
// Every accessor named GetXXX follows the resolution contract of package service: it takes the
// context and the service.FieldParams of the request and returns a future.Future. Accessors on
// schema metadata return futures that are already complete. Absent values (the name of a wrapper
// type, the fields of a scalar, the description of an undocumented type) complete with nil.
package introspection
