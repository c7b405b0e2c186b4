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

// DirectiveConfig provides the definition of a Directive.
type DirectiveConfig struct {
	Name        string
	Description string

	// Locations in text form such as "FIELD". They are converted by NewDirective.
	Locations []string

	Args []*InputValue
}

// Directive describes a directive supported by a schema.
type Directive struct {
	name        string
	description string
	locations   []DirectiveLocation
	args        []*InputValue
}

// NewDirective creates a Directive from config. It fails if any of the locations is unknown.
func NewDirective(config DirectiveConfig) (*Directive, error) {
	locations := make([]DirectiveLocation, len(config.Locations))
	for i, text := range config.Locations {
		location, err := ParseDirectiveLocation(text)
		if err != nil {
			return nil, graphql.NewError(
				fmt.Sprintf(`invalid location for directive "@%s"`, config.Name),
				graphql.Op("introspection.NewDirective"),
				err)
		}
		locations[i] = location
	}

	return &Directive{
		name:        config.Name,
		description: config.Description,
		locations:   locations,
		args:        append([]*InputValue(nil), config.Args...),
	}, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but panics on failure
// instead of returning an error.
func MustNewDirective(config DirectiveConfig) *Directive {
	directive, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return directive
}

// Name of the directive without "@"
func (directive *Directive) Name() string {
	return directive.name
}

// Description of the directive; empty if none
func (directive *Directive) Description() string {
	return directive.description
}

// Locations returns the locations in the order they were given.
func (directive *Directive) Locations() []DirectiveLocation {
	return append([]DirectiveLocation(nil), directive.locations...)
}

// Args returns the arguments of the directive.
func (directive *Directive) Args() []*InputValue {
	return append([]*InputValue(nil), directive.args...)
}

// GetName resolves to the name (string).
func (directive *Directive) GetName(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(directive.name)
}

// GetDescription resolves to the description (string) or nil if empty.
func (directive *Directive) GetDescription(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(directive.description)
}

// GetLocations resolves to the locations ([]DirectiveLocation).
func (directive *Directive) GetLocations(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(directive.Locations())
}

// GetArgs resolves to the arguments ([]*InputValue).
func (directive *Directive) GetArgs(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(directive.Args())
}
