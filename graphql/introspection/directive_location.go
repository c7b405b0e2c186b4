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

// DirectiveLocation specifies a valid location for a directive to be used.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
type DirectiveLocation string

// Enumeration of DirectiveLocation
const (
	// Request Definitions
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type System Definitions
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// directiveLocations lists every DirectiveLocation with its description in the order they appear in
// __DirectiveLocation.
var directiveLocations = []struct {
	location    DirectiveLocation
	description string
}{
	{DirectiveLocationQuery, "Location adjacent to a query operation."},
	{DirectiveLocationMutation, "Location adjacent to a mutation operation."},
	{DirectiveLocationSubscription, "Location adjacent to a subscription operation."},
	{DirectiveLocationField, "Location adjacent to a field."},
	{DirectiveLocationFragmentDefinition, "Location adjacent to a fragment definition."},
	{DirectiveLocationFragmentSpread, "Location adjacent to a fragment spread."},
	{DirectiveLocationInlineFragment, "Location adjacent to an inline fragment."},
	{DirectiveLocationVariableDefinition, "Location adjacent to a variable definition."},
	{DirectiveLocationSchema, "Location adjacent to a schema definition."},
	{DirectiveLocationScalar, "Location adjacent to a scalar definition."},
	{DirectiveLocationObject, "Location adjacent to an object type definition."},
	{DirectiveLocationFieldDefinition, "Location adjacent to a field definition."},
	{DirectiveLocationArgumentDefinition, "Location adjacent to an argument definition."},
	{DirectiveLocationInterface, "Location adjacent to an interface definition."},
	{DirectiveLocationUnion, "Location adjacent to a union definition."},
	{DirectiveLocationEnum, "Location adjacent to an enum definition."},
	{DirectiveLocationEnumValue, "Location adjacent to an enum value definition."},
	{DirectiveLocationInputObject, "Location adjacent to an input object type definition."},
	{DirectiveLocationInputFieldDefinition, "Location adjacent to an input object field definition."},
}

// DirectiveLocationNames returns the text of every DirectiveLocation.
func DirectiveLocationNames() []string {
	names := make([]string, len(directiveLocations))
	for i, entry := range directiveLocations {
		names[i] = string(entry.location)
	}
	return names
}

// ParseDirectiveLocation converts the text of a directive location. Unknown text is an error that
// names the text and suggests the closest locations.
func ParseDirectiveLocation(text string) (DirectiveLocation, error) {
	for _, entry := range directiveLocations {
		if string(entry.location) == text {
			return entry.location, nil
		}
	}

	names := DirectiveLocationNames()
	return "", graphql.NewError(
		fmt.Sprintf(`unknown directive location "%s".`, text)+util.DidYouMean(text, names),
		graphql.Op("introspection.ParseDirectiveLocation"),
		graphql.ErrKindInternal)
}
