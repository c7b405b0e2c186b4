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
	"encoding/base64"
	"fmt"

	"github.com/botobag/graphqlservice/graphql"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/internal/util"
)

// Helpers in this file convert a named argument from the Arguments of a field. The required form
// (ArgumentX) fails when the argument is missing or null. The optional form (OptionalArgumentX)
// returns nil for a missing or null argument.

func coercionError(name string, expected string, value response.Value) error {
	return graphql.NewError(
		fmt.Sprintf(`Argument "%s" has invalid value: expected %s but got %s.`, name, expected, value.Kind()),
		graphql.ErrKindCoercion)
}

func missingArgumentError(name string) error {
	return graphql.NewError(fmt.Sprintf(`Argument "%s" is required but not provided.`, name), graphql.ErrKindCoercion)
}

// lookupArgument returns the non-null value of the argument or false.
func lookupArgument(args response.Value, name string) (response.Value, bool) {
	value, found := args.Find(name)
	if !found || value.IsNull() {
		return response.Value{}, false
	}
	return value, true
}

// ArgumentBool converts a required Boolean argument.
func ArgumentBool(args response.Value, name string) (bool, error) {
	value, found := lookupArgument(args, name)
	if !found {
		return false, missingArgumentError(name)
	}
	b, ok := value.BoolValue()
	if !ok {
		return false, coercionError(name, "Boolean", value)
	}
	return b, nil
}

// OptionalArgumentBool converts an optional Boolean argument.
func OptionalArgumentBool(args response.Value, name string) (*bool, error) {
	if _, found := lookupArgument(args, name); !found {
		return nil, nil
	}
	b, err := ArgumentBool(args, name)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ArgumentInt converts a required Int argument.
func ArgumentInt(args response.Value, name string) (int, error) {
	value, found := lookupArgument(args, name)
	if !found {
		return 0, missingArgumentError(name)
	}
	i, ok := value.IntValue()
	if !ok {
		return 0, coercionError(name, "Int", value)
	}
	return i, nil
}

// OptionalArgumentInt converts an optional Int argument.
func OptionalArgumentInt(args response.Value, name string) (*int, error) {
	if _, found := lookupArgument(args, name); !found {
		return nil, nil
	}
	i, err := ArgumentInt(args, name)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// ArgumentString converts a required String argument.
func ArgumentString(args response.Value, name string) (string, error) {
	value, found := lookupArgument(args, name)
	if !found {
		return "", missingArgumentError(name)
	}
	s, ok := value.StringValue()
	if !ok {
		return "", coercionError(name, "String", value)
	}
	return s, nil
}

// OptionalArgumentString converts an optional String argument.
func OptionalArgumentString(args response.Value, name string) (*string, error) {
	if _, found := lookupArgument(args, name); !found {
		return nil, nil
	}
	s, err := ArgumentString(args, name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// decodeID accepts ID bytes or a base64 string (the form IDs take in JSON).
func decodeID(name string, value response.Value) ([]byte, error) {
	if id, ok := value.IDValue(); ok {
		return id, nil
	}
	s, ok := value.StringValue()
	if !ok {
		return nil, coercionError(name, "ID", value)
	}
	id, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, graphql.NewError(fmt.Sprintf(`Argument "%s" has invalid ID value.`, name), err, graphql.ErrKindCoercion)
	}
	return id, nil
}

// ArgumentID converts a required ID argument.
func ArgumentID(args response.Value, name string) ([]byte, error) {
	value, found := lookupArgument(args, name)
	if !found {
		return nil, missingArgumentError(name)
	}
	return decodeID(name, value)
}

// ArgumentIDList converts a required argument of type [ID!]!.
func ArgumentIDList(args response.Value, name string) ([][]byte, error) {
	value, found := lookupArgument(args, name)
	if !found {
		return nil, missingArgumentError(name)
	}
	items, ok := value.ListValue()
	if !ok {
		return nil, coercionError(name, "List", value)
	}
	ids := make([][]byte, len(items))
	for i, item := range items {
		id, err := decodeID(name, item)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// ArgumentEnum converts a required enum argument. names lists the tokens of the enum in the order of
// its values and the index of the matching token is returned. An unknown token fails with the
// closest tokens suggested.
func ArgumentEnum(args response.Value, name string, names []string) (int, error) {
	value, found := lookupArgument(args, name)
	if !found {
		return 0, missingArgumentError(name)
	}
	return ConvertEnum(name, value, names)
}

// ConvertEnum converts value to the index of the matching token in names.
func ConvertEnum(name string, value response.Value, names []string) (int, error) {
	token, ok := value.EnumValue()
	if !ok {
		return 0, coercionError(name, "enum value", value)
	}
	for i, n := range names {
		if n == token {
			return i, nil
		}
	}
	return 0, graphql.NewError(
		fmt.Sprintf(`Argument "%s" has invalid enum value "%s".`, name, token)+util.DidYouMean(token, names),
		graphql.ErrKindCoercion)
}

// ArgumentMap returns a required argument of an input object type as a Map to be converted by the
// caller.
func ArgumentMap(args response.Value, name string) (response.Value, error) {
	value, found := lookupArgument(args, name)
	if !found {
		return response.Value{}, missingArgumentError(name)
	}
	if value.Kind() != response.KindMap {
		return response.Value{}, coercionError(name, "input object", value)
	}
	return value, nil
}
