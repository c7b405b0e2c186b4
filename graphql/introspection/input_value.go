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

// InputValueConfig provides the definition of an InputValue.
type InputValueConfig struct {
	Name        string
	Description string
	Type        *Type

	// DefaultValue is the default in GraphQL syntax (e.g. `false` or `"abc"`); empty if there is
	// no default.
	DefaultValue string
}

// InputValue describes an argument of a field or directive, or a field of an input object type.
type InputValue struct {
	name         string
	description  string
	typ          *Type
	defaultValue string
}

// NewInputValue creates an InputValue from config.
func NewInputValue(config InputValueConfig) *InputValue {
	return &InputValue{
		name:         config.Name,
		description:  config.Description,
		typ:          config.Type,
		defaultValue: config.DefaultValue,
	}
}

// Name of the input value
func (value *InputValue) Name() string {
	return value.name
}

// Description of the input value; empty if none
func (value *InputValue) Description() string {
	return value.description
}

// Type of the input value
func (value *InputValue) Type() *Type {
	return value.typ
}

// DefaultValue returns the default value and true if one is given.
func (value *InputValue) DefaultValue() (string, bool) {
	return value.defaultValue, len(value.defaultValue) > 0
}

// GetName resolves to the name (string).
func (value *InputValue) GetName(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(value.name)
}

// GetDescription resolves to the description (string) or nil if empty.
func (value *InputValue) GetDescription(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(value.description)
}

// GetType resolves to the type (*Type).
func (value *InputValue) GetType(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(value.typ)
}

// GetDefaultValue resolves to the default value (string) or nil if there is none.
func (value *InputValue) GetDefaultValue(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(value.defaultValue)
}
