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

// Type is a node of the type graph. It is a closed variant tagged by its TypeKind; the payload that
// is meaningful depends on the kind:
//
//	SCALAR:       name, description
//	OBJECT:       name, description, fields, interfaces
//	INTERFACE:    name, description, fields
//	UNION:        name, description, possibleTypes
//	ENUM:         name, description, enumValues
//	INPUT_OBJECT: name, description, inputFields
//	LIST:         ofType
//	NON_NULL:     ofType
//
// Named types are created with NewXXXType and filled while the schema is being built. Wrapper types
// are only created by SchemaBuilder.WrapType. Links to other types are not owning; the Schema that
// registers a type keeps everything it links to alive.
type Type struct {
	kind        TypeKind
	name        string
	description string

	fields        []*Field
	interfaces    []*Type
	possibleTypes []*Type
	enumValues    []*EnumValue
	inputFields   []*InputValue
	ofType        *Type

	// Set by SchemaBuilder.Build. A frozen type rejects mutation.
	frozen bool
}

func newNamedType(kind TypeKind, name string, description string) *Type {
	return &Type{
		kind:        kind,
		name:        name,
		description: description,
	}
}

// NewScalarType creates a SCALAR type.
func NewScalarType(name string, description string) *Type {
	return newNamedType(TypeKindScalar, name, description)
}

// NewObjectType creates an OBJECT type. Fields and interfaces are added with AddFields and
// AddInterfaces.
func NewObjectType(name string, description string) *Type {
	return newNamedType(TypeKindObject, name, description)
}

// NewInterfaceType creates an INTERFACE type. Fields are added with AddFields.
func NewInterfaceType(name string, description string) *Type {
	return newNamedType(TypeKindInterface, name, description)
}

// NewUnionType creates a UNION type. Members are added with AddPossibleTypes.
func NewUnionType(name string, description string) *Type {
	return newNamedType(TypeKindUnion, name, description)
}

// NewEnumType creates an ENUM type. Values are added with AddEnumValues.
func NewEnumType(name string, description string) *Type {
	return newNamedType(TypeKindEnum, name, description)
}

// NewInputObjectType creates an INPUT_OBJECT type. Fields are added with AddInputValues.
func NewInputObjectType(name string, description string) *Type {
	return newNamedType(TypeKindInputObject, name, description)
}

// checkMutable panics unless t is of one of the kinds and not frozen.
func (t *Type) checkMutable(op string, kinds ...TypeKind) {
	if t.frozen {
		panic(graphql.NewError(
			fmt.Sprintf(`cannot modify type "%s" after the schema was built`, t),
			graphql.Op("introspection.Type."+op),
			graphql.ErrKindInternal))
	}
	for _, kind := range kinds {
		if t.kind == kind {
			return
		}
	}
	panic(graphql.NewError(
		fmt.Sprintf(`type "%s" of kind %s doesn't support %s`, t, t.kind, op),
		graphql.Op("introspection.Type."+op),
		graphql.ErrKindInternal))
}

// AddFields appends fields to an OBJECT or INTERFACE type.
func (t *Type) AddFields(fields ...*Field) {
	t.checkMutable("AddFields", TypeKindObject, TypeKindInterface)
	t.fields = append(t.fields, fields...)
}

// AddInterfaces appends interfaces implemented by an OBJECT type.
func (t *Type) AddInterfaces(interfaces ...*Type) {
	t.checkMutable("AddInterfaces", TypeKindObject)
	t.interfaces = append(t.interfaces, interfaces...)
}

// AddPossibleTypes appends members to a UNION type.
func (t *Type) AddPossibleTypes(possibleTypes ...*Type) {
	t.checkMutable("AddPossibleTypes", TypeKindUnion)
	t.possibleTypes = append(t.possibleTypes, possibleTypes...)
}

// AddEnumValues appends values to an ENUM type.
func (t *Type) AddEnumValues(values ...*EnumValue) {
	t.checkMutable("AddEnumValues", TypeKindEnum)
	t.enumValues = append(t.enumValues, values...)
}

// AddInputValues appends fields to an INPUT_OBJECT type.
func (t *Type) AddInputValues(values ...*InputValue) {
	t.checkMutable("AddInputValues", TypeKindInputObject)
	t.inputFields = append(t.inputFields, values...)
}

// Kind returns the variant of t.
func (t *Type) Kind() TypeKind {
	return t.kind
}

// Name returns the name of a named type and empty for wrappers.
func (t *Type) Name() string {
	return t.name
}

// Description returns the description; empty if none.
func (t *Type) Description() string {
	return t.description
}

// Fields returns the fields of an OBJECT or INTERFACE type without the deprecated ones unless
// includeDeprecated is true. It returns nil for other kinds.
func (t *Type) Fields(includeDeprecated bool) []*Field {
	if t.kind != TypeKindObject && t.kind != TypeKindInterface {
		return nil
	}
	return filterDeprecated(t.fields, &includeDeprecated)
}

// Interfaces returns the interfaces of an OBJECT type and nil for other kinds.
func (t *Type) Interfaces() []*Type {
	if t.kind != TypeKindObject {
		return nil
	}
	return append([]*Type{}, t.interfaces...)
}

// PossibleTypes returns the members of a UNION type and nil for other kinds. Members that were given
// as nil are skipped.
func (t *Type) PossibleTypes() []*Type {
	if t.kind != TypeKindUnion {
		return nil
	}
	result := make([]*Type, 0, len(t.possibleTypes))
	for _, possibleType := range t.possibleTypes {
		if possibleType != nil {
			result = append(result, possibleType)
		}
	}
	return result
}

// EnumValues returns the values of an ENUM type without the deprecated ones unless includeDeprecated
// is true. It returns nil for other kinds.
func (t *Type) EnumValues(includeDeprecated bool) []*EnumValue {
	if t.kind != TypeKindEnum {
		return nil
	}
	return filterDeprecated(t.enumValues, &includeDeprecated)
}

// InputFields returns the fields of an INPUT_OBJECT type and nil for other kinds.
func (t *Type) InputFields() []*InputValue {
	if t.kind != TypeKindInputObject {
		return nil
	}
	return append([]*InputValue{}, t.inputFields...)
}

// OfType returns the wrapped type of a LIST or NON_NULL type and nil for other kinds.
func (t *Type) OfType() *Type {
	return t.ofType
}

// String formats t in the GraphQL type reference notation such as "[Task!]!".
func (t *Type) String() string {
	switch t.kind {
	case TypeKindList:
		return "[" + t.ofType.String() + "]"
	case TypeKindNonNull:
		return t.ofType.String() + "!"
	}
	return t.name
}

// GetKind resolves to the kind (TypeKind).
func (t *Type) GetKind(ctx context.Context, params service.FieldParams) future.Future {
	return future.Ready(t.kind)
}

// GetName resolves to the name (string) or nil for a wrapper type.
func (t *Type) GetName(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(t.name)
}

// GetDescription resolves to the description (string) or nil if empty.
func (t *Type) GetDescription(ctx context.Context, params service.FieldParams) future.Future {
	return optionalString(t.description)
}

// GetFields resolves to the fields ([]*Field) of an OBJECT or INTERFACE type or nil for other kinds.
// Deprecated fields are left out unless includeDeprecated points to true.
func (t *Type) GetFields(ctx context.Context, params service.FieldParams, includeDeprecated *bool) future.Future {
	if t.kind != TypeKindObject && t.kind != TypeKindInterface {
		return future.Ready(nil)
	}
	return future.Ready(filterDeprecated(t.fields, includeDeprecated))
}

// GetInterfaces resolves to the interfaces ([]*Type) of an OBJECT type or nil for other kinds.
func (t *Type) GetInterfaces(ctx context.Context, params service.FieldParams) future.Future {
	if t.kind != TypeKindObject {
		return future.Ready(nil)
	}
	return future.Ready(t.Interfaces())
}

// GetPossibleTypes resolves to the members ([]*Type) of a UNION type or nil for other kinds.
func (t *Type) GetPossibleTypes(ctx context.Context, params service.FieldParams) future.Future {
	if t.kind != TypeKindUnion {
		return future.Ready(nil)
	}
	return future.Ready(t.PossibleTypes())
}

// GetEnumValues resolves to the values ([]*EnumValue) of an ENUM type or nil for other kinds.
// Deprecated values are left out unless includeDeprecated points to true.
func (t *Type) GetEnumValues(ctx context.Context, params service.FieldParams, includeDeprecated *bool) future.Future {
	if t.kind != TypeKindEnum {
		return future.Ready(nil)
	}
	return future.Ready(filterDeprecated(t.enumValues, includeDeprecated))
}

// GetInputFields resolves to the fields ([]*InputValue) of an INPUT_OBJECT type or nil for other
// kinds.
func (t *Type) GetInputFields(ctx context.Context, params service.FieldParams) future.Future {
	if t.kind != TypeKindInputObject {
		return future.Ready(nil)
	}
	return future.Ready(t.InputFields())
}

// GetOfType resolves to the wrapped type (*Type) of a LIST or NON_NULL type or nil for other kinds.
func (t *Type) GetOfType(ctx context.Context, params service.FieldParams) future.Future {
	if t.ofType == nil {
		return future.Ready(nil)
	}
	return future.Ready(t.ofType)
}
