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

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql/service"
)

// FieldConfig provides the definition of a Field.
type FieldConfig struct {
	Name        string
	Description string

	// The field is deprecated if and only if DeprecationReason is non-nil.
	DeprecationReason *string

	Args []*InputValue
	Type *Type
}

// Field describes a field of an object or an interface type. Fields are immutable.
type Field struct {
	name              string
	description       string
	deprecationReason *string
	args              []*InputValue
	typ               *Type
}

// NewField creates a Field from config.
func NewField(config FieldConfig) *Field {
	field := &Field{
		name:        config.Name,
		description: config.Description,
		args:        append([]*InputValue(nil), config.Args...),
		typ:         config.Type,
	}
	if config.DeprecationReason != nil {
		field.deprecationReason = Deprecated(*config.DeprecationReason)
	}
	return field
}

// Name of the field
func (field *Field) Name() string {
	return field.name
}

// Description of the field; empty if none
func (field *Field) Description() string {
	return field.description
}

// Args returns the arguments of the field.
func (field *Field) Args() []*InputValue {
	return append([]*InputValue(nil), field.args...)
}

// Type returns the type of the field value.
func (field *Field) Type() *Type {
	return field.typ
}

// IsDeprecated returns true if the field has a deprecation reason.
func (field *Field) IsDeprecated() bool {
	return field.deprecationReason != nil
}

// DeprecationReason returns the reason and true if the field is deprecated.
func (field *Field) DeprecationReason() (string, bool) {
	if field.deprecationReason == nil {
		return "", false
	}
	return *field.deprecationReason, true
}

// GetName resolves to the name (string).
func (field *Field) GetName(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(field.name)
}

// GetDescription resolves to the description (string) or nil if empty.
func (field *Field) GetDescription(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(field.description)
}

// GetArgs resolves to the arguments ([]*InputValue).
func (field *Field) GetArgs(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(field.Args())
}

// GetType resolves to the type (*Type).
func (field *Field) GetType(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(field.typ)
}

// GetIsDeprecated resolves to whether the field is deprecated (bool).
func (field *Field) GetIsDeprecated(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(field.IsDeprecated())
}

// GetDeprecationReason resolves to the reason (string) or nil if the field is not deprecated.
func (field *Field) GetDeprecationReason(ctx context.Context, params service.FieldParams) future.Future {
	if field.deprecationReason == nil {
		return future.Ready(nil)
	}
	return future.Ready(*field.deprecationReason)
}

// optionalString returns a future of s, or of nil when s is empty.
func optionalString(s string) future.Future {
	if len(s) == 0 {
		return future.Ready(nil)
	}
	return future.Ready(s)
}
