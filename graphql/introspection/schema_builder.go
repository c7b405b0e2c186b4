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
	"github.com/botobag/graphqlservice/graphql/service"
)

// SchemaBuilderConfig provides the configuration for a SchemaBuilder.
type SchemaBuilderConfig struct {
	// Logger receives a summary of the built schema. It is service.DefaultLogger if not specified.
	Logger service.Logger

	// ExcludeStandardTypes skips the registration of the built-in scalars (Int, Float, String,
	// Boolean and ID) and the standard directives (@skip, @include and @deprecated).
	ExcludeStandardTypes bool

	// ExcludeIntrospectionTypes skips the registration of __Schema, __Type and the other types that
	// describe the schema itself.
	ExcludeIntrospectionTypes bool
}

// Validate checks the configuration values.
func (config *SchemaBuilderConfig) Validate() error {
	if config.ExcludeStandardTypes && !config.ExcludeIntrospectionTypes {
		return graphql.NewError(
			"introspection types require the standard types; set ExcludeIntrospectionTypes as well",
			graphql.Op("introspection.SchemaBuilderConfig.Validate"),
			graphql.ErrKindValidation)
	}
	return nil
}

// SchemaBuilder assembles the type graph of a schema. It is used from a single goroutine and
// consumed by Build; every method panics once Build has succeeded.
type SchemaBuilder struct {
	registry
	logger   service.Logger
	consumed bool
}

// NewSchemaBuilder creates a SchemaBuilder with the standard and introspection types registered as
// requested by config.
func NewSchemaBuilder(config SchemaBuilderConfig) (*SchemaBuilder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	builder := &SchemaBuilder{
		registry: newRegistry(),
		logger:   config.Logger,
	}
	if builder.logger == nil {
		builder.logger = service.DefaultLogger{}
	}

	if !config.ExcludeStandardTypes {
		addStandardTypes(builder)
	}
	if !config.ExcludeIntrospectionTypes {
		addIntrospectionTypes(builder)
	}

	return builder, nil
}

// MustNewSchemaBuilder is a convenience function equivalent to NewSchemaBuilder but panics on failure
// instead of returning an error.
func MustNewSchemaBuilder(config SchemaBuilderConfig) *SchemaBuilder {
	builder, err := NewSchemaBuilder(config)
	if err != nil {
		panic(err)
	}
	return builder
}

func (builder *SchemaBuilder) checkNotConsumed(op graphql.Op) {
	if builder.consumed {
		panic(graphql.NewError("schema builder cannot be used after Build", op, graphql.ErrKindInternal))
	}
}

// AddType registers t under name. Types are enumerated in the order they are added. Binding a name
// that is already bound is an error and leaves the existing binding in place.
func (builder *SchemaBuilder) AddType(name string, t *Type) error {
	const op = graphql.Op("introspection.SchemaBuilder.AddType")
	builder.checkNotConsumed(op)

	if t == nil {
		return graphql.NewError(fmt.Sprintf(`cannot bind "%s" to a nil type`, name), op, graphql.ErrKindValidation)
	}
	if t.kind.IsWrapper() {
		return graphql.NewError(
			fmt.Sprintf(`cannot bind "%s" to wrapper type %s; use WrapType`, name, t),
			op,
			graphql.ErrKindValidation)
	}
	if _, exists := builder.typeIndex[name]; exists {
		return graphql.NewError(
			fmt.Sprintf(`schema must contain unique named types but contains multiple types named "%s"`, name),
			op,
			graphql.ErrKindValidation)
	}

	builder.typeIndex[name] = len(builder.types)
	builder.names = append(builder.names, name)
	builder.types = append(builder.types, t)
	return nil
}

// MustAddType is like AddType but panics on error.
func (builder *SchemaBuilder) MustAddType(name string, t *Type) {
	if err := builder.AddType(name, t); err != nil {
		panic(err)
	}
}

// LookupType returns the type bound to name. It panics if there is no such type; use FindType to
// probe for a type that may not exist.
func (builder *SchemaBuilder) LookupType(name string) *Type {
	const op = graphql.Op("introspection.SchemaBuilder.LookupType")
	builder.checkNotConsumed(op)
	return builder.lookupType(op, name)
}

// FindType returns the type bound to name and whether it exists.
func (builder *SchemaBuilder) FindType(name string) (*Type, bool) {
	builder.checkNotConsumed("introspection.SchemaBuilder.FindType")
	return builder.findType(name)
}

// WrapType returns the LIST or NON_NULL wrapper of ofType. The wrapper is created on the first call
// and the same wrapper is returned by every later call with the same kind and type. It panics for
// other kinds or a nil ofType.
func (builder *SchemaBuilder) WrapType(kind TypeKind, ofType *Type) *Type {
	const op = graphql.Op("introspection.SchemaBuilder.WrapType")
	builder.checkNotConsumed(op)

	wrappers := builder.wrappersOf(op, kind)
	if ofType == nil {
		panic(graphql.NewError("cannot wrap a nil type", op, graphql.ErrKindInternal))
	}

	wrapper, exists := wrappers[ofType]
	if !exists {
		wrapper = &Type{
			kind:   kind,
			ofType: ofType,
		}
		wrappers[ofType] = wrapper
		builder.wrappers = append(builder.wrappers, wrapper)
	}
	return wrapper
}

// ListOf is a shorthand for WrapType(TypeKindList, ofType).
func (builder *SchemaBuilder) ListOf(ofType *Type) *Type {
	return builder.WrapType(TypeKindList, ofType)
}

// NonNullOf is a shorthand for WrapType(TypeKindNonNull, ofType).
func (builder *SchemaBuilder) NonNullOf(ofType *Type) *Type {
	return builder.WrapType(TypeKindNonNull, ofType)
}

// AddDirective appends a directive.
func (builder *SchemaBuilder) AddDirective(directive *Directive) {
	builder.checkNotConsumed("introspection.SchemaBuilder.AddDirective")
	builder.directives = append(builder.directives, directive)
}

// SetQueryType sets the root type for query operations. It is required by Build.
func (builder *SchemaBuilder) SetQueryType(t *Type) {
	builder.checkNotConsumed("introspection.SchemaBuilder.SetQueryType")
	builder.queryType = t
}

// SetMutationType sets the root type for mutation operations.
func (builder *SchemaBuilder) SetMutationType(t *Type) {
	builder.checkNotConsumed("introspection.SchemaBuilder.SetMutationType")
	builder.mutationType = t
}

// SetSubscriptionType sets the root type for subscription operations.
func (builder *SchemaBuilder) SetSubscriptionType(t *Type) {
	builder.checkNotConsumed("introspection.SchemaBuilder.SetSubscriptionType")
	builder.subscriptionType = t
}

// Build validates the type graph and returns the Schema. On success every type is frozen and the
// builder is consumed. On failure the returned error is a graphql.Errors listing every problem and
// the builder can still be used to fix them.
func (builder *SchemaBuilder) Build() (*Schema, error) {
	const op = graphql.Op("introspection.SchemaBuilder.Build")
	builder.checkNotConsumed(op)

	errs := builder.validate(op)
	if errs.HaveOccurred() {
		return nil, errs
	}

	for _, t := range builder.allTypes() {
		t.frozen = true
	}
	builder.consumed = true

	schema := &Schema{
		registry: builder.registry,
	}
	builder.registry = registry{}

	builder.logger.Logf("built schema with %d types, %d wrapper types and %d directives",
		len(schema.types), len(schema.listWrappers)+len(schema.nonNullWrappers), len(schema.directives))

	return schema, nil
}

// validate collects the problems that prevent the graph from being built.
func (builder *SchemaBuilder) validate(op graphql.Op) graphql.Errors {
	var errs graphql.Errors
	report := func(format string, args ...interface{}) {
		errs.Emplace(fmt.Sprintf(format, args...), op, graphql.ErrKindValidation)
	}

	checkRoot := func(operation string, t *Type, required bool) {
		switch {
		case t == nil:
			if required {
				report("%s root type must be provided", operation)
			}
		case t.kind != TypeKindObject:
			report(`%s root type must be an object type but got "%s" of kind %s`, operation, t, t.kind)
		case !builder.owns(t):
			report(`%s root type "%s" is not registered`, operation, t)
		}
	}
	checkRoot("query", builder.queryType, true)
	checkRoot("mutation", builder.mutationType, false)
	checkRoot("subscription", builder.subscriptionType, false)

	checkLink := func(owner string, what string, t *Type) {
		if t == nil {
			report("%s has no type for %s", owner, what)
		} else if !builder.owns(t) {
			report(`%s refers to type "%s" for %s which is not registered in the schema`, owner, t, what)
		}
	}
	checkInputValues := func(owner string, values []*InputValue) {
		for _, value := range values {
			checkLink(owner, fmt.Sprintf(`"%s"`, value.name), value.typ)
		}
	}

	for _, t := range builder.allTypes() {
		owner := fmt.Sprintf(`type "%s"`, t)
		for _, field := range t.fields {
			fieldOwner := fmt.Sprintf(`field "%s.%s"`, t.name, field.name)
			checkLink(fieldOwner, "its value", field.typ)
			checkInputValues(fieldOwner, field.args)
		}
		for _, iface := range t.interfaces {
			checkLink(owner, "an interface", iface)
			if iface != nil && iface.kind != TypeKindInterface {
				report(`type "%s" can only implement interfaces but "%s" is of kind %s`, t, iface, iface.kind)
			}
		}
		for _, possibleType := range t.possibleTypes {
			// Nil members are skipped when read.
			if possibleType == nil {
				continue
			}
			checkLink(owner, "a member", possibleType)
			if possibleType.kind != TypeKindObject {
				report(`union "%s" can only include object types but "%s" is of kind %s`, t, possibleType, possibleType.kind)
			}
		}
		checkInputValues(owner, t.inputFields)
		if t.kind.IsWrapper() {
			checkLink(owner, "the wrapped type", t.ofType)
		}
	}

	for _, directive := range builder.directives {
		if directive == nil {
			report("directive must not be nil")
			continue
		}
		checkInputValues(fmt.Sprintf(`directive "@%s"`, directive.name), directive.args)
	}

	return errs
}
