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

// EnumValueConfig provides the definition of an EnumValue.
type EnumValueConfig struct {
	Name        string
	Description string

	// The value is deprecated if and only if DeprecationReason is non-nil.
	DeprecationReason *string
}

// EnumValue describes one value of an enum type.
type EnumValue struct {
	name              string
	description       string
	deprecationReason *string
}

// NewEnumValue creates an EnumValue from config.
func NewEnumValue(config EnumValueConfig) *EnumValue {
	value := &EnumValue{
		name:        config.Name,
		description: config.Description,
	}
	if config.DeprecationReason != nil {
		value.deprecationReason = Deprecated(*config.DeprecationReason)
	}
	return value
}

// Name of the enum value
func (value *EnumValue) Name() string {
	return value.name
}

// Description of the enum value; empty if none
func (value *EnumValue) Description() string {
	return value.description
}

// IsDeprecated returns true if the value has a deprecation reason.
func (value *EnumValue) IsDeprecated() bool {
	return value.deprecationReason != nil
}

// DeprecationReason returns the reason and true if the value is deprecated.
func (value *EnumValue) DeprecationReason() (string, bool) {
	if value.deprecationReason == nil {
		return "", false
	}
	return *value.deprecationReason, true
}

// GetName resolves to the name (string).
func (value *EnumValue) GetName(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(value.name)
}

// GetDescription resolves to the description (string) or nil if empty.
func (value *EnumValue) GetDescription(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(value.description)
}

// GetIsDeprecated resolves to whether the value is deprecated (bool).
func (value *EnumValue) GetIsDeprecated(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(value.IsDeprecated())
}

// GetDeprecationReason resolves to the reason (string) or nil if the value is not deprecated.
func (value *EnumValue) GetDeprecationReason(ctx context.Context, params service.FieldParams) future.Future {
	if value.deprecationReason == nil {
		return future.Ready(nil)
	}
	return future.Ready(*value.deprecationReason)
}
