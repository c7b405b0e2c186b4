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

package graphql_test

import (
	"encoding/json"
	"errors"

	"github.com/botobag/graphqlservice/graphql"

	"github.com/json-iterator/go"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newError(message string, args ...interface{}) *graphql.Error {
	e, ok := graphql.NewError(message, args...).(*graphql.Error)
	Expect(ok).Should(BeTrue())
	return e
}

var _ = Describe("Error", func() {
	It("prints message with op and kind", func() {
		e := newError("duplicate type name \"Node\"", graphql.Op("SchemaBuilder.AddType"), graphql.ErrKindValidation)
		Expect(e.Error()).Should(Equal(`SchemaBuilder.AddType: duplicate type name "Node": validation error`))
	})

	It("prints path", func() {
		e := newError("resolver failed", graphql.NewResponsePath("__schema", "types"))
		Expect(e.Error()).Should(Equal("resolver failed for response field in the path __schema.types"))
	})

	It("prints list indexes in path", func() {
		path := graphql.NewResponsePath("types")
		path.AppendIndex(3)
		path.AppendFieldName("fields")
		Expect(path.String()).Should(Equal("types[3].fields"))
	})

	It("inherits kind, path and extensions from the wrapped Error", func() {
		path := graphql.NewResponsePath("node")
		inner := newError("inner", path, graphql.ErrKindExecution, graphql.ErrorExtensions{"code": "E1"})
		outer := newError("outer", inner)

		Expect(outer.Kind).Should(Equal(graphql.ErrKindExecution))
		Expect(outer.Path).Should(Equal(path))
		Expect(outer.Extensions).Should(Equal(graphql.ErrorExtensions{"code": "E1"}))
		Expect(errors.Unwrap(outer)).Should(BeIdenticalTo(inner))
	})

	It("suppresses repeated information when printing a chain", func() {
		inner := newError("inner", graphql.ErrKindExecution)
		outer := newError("outer", inner)
		Expect(outer.Error()).Should(Equal("outer: execution error:\n  inner"))
	})

	It("prints the wrapped non-graphql error", func() {
		e := graphql.WrapErrorf(errors.New("connection reset"), "failed to load %s", "task")
		Expect(e.Error()).Should(Equal("failed to load task: connection reset"))
	})

	It("rejects unknown argument types", func() {
		err := graphql.NewError("message", 42)
		_, ok := err.(*graphql.Error)
		Expect(ok).Should(BeFalse())
	})

	It("serializes to JSON", func() {
		e := newError("resolver failed",
			graphql.NewResponsePath("node", "id"),
			graphql.ErrorExtensions{"code": "NOT_FOUND"},
			graphql.ErrKindExecution)
		s, err := json.Marshal(e)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s).Should(MatchJSON(`{
			"message": "resolver failed",
			"path": ["node", "id"],
			"extensions": {"code": "NOT_FOUND"}
		}`))
	})

	It("serializes extensions holding nested maps", func() {
		e := newError("rate limited",
			graphql.ErrorExtensions{
				"code":  "RATE_LIMITED",
				"retry": map[string]interface{}{"after": 30, "unit": "s"},
				"tags":  []string{"a", "b"},
			})
		s, err := jsoniter.Marshal(e)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s).Should(MatchJSON(`{
			"message": "rate limited",
			"extensions": {
				"code": "RATE_LIMITED",
				"retry": {"after": 30, "unit": "s"},
				"tags": ["a", "b"]
			}
		}`))
	})

	It("serializes only the message when there is no context", func() {
		s, err := json.Marshal(newError("plain"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s).Should(MatchJSON(`{"message": "plain"}`))
	})
})

var _ = Describe("Errors", func() {
	It("reports whether errors occurred", func() {
		Expect(graphql.NoErrors().HaveOccurred()).Should(BeFalse())
		Expect(graphql.ErrorsOf("something wrong").HaveOccurred()).Should(BeTrue())
	})

	It("collects errors and messages", func() {
		first := graphql.NewError("first")
		errs := graphql.ErrorsOf(first, "second", graphql.ErrKindValidation)
		Expect(errs.Errors).Should(HaveLen(2))
		Expect(errs.Errors[0]).Should(BeIdenticalTo(first))
		Expect(errs.Errors[1].Kind).Should(Equal(graphql.ErrKindValidation))
		Expect(errs.Error()).Should(Equal("first\nsecond: validation error"))
	})

	It("panics on bad arguments", func() {
		Expect(func() { graphql.ErrorsOf(42) }).Should(Panic())
	})
})
