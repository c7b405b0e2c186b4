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

package service_test

import (
	"context"
	"errors"

	"github.com/botobag/graphqlservice/concurrent/future"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenTelemetryTracer", func() {
	var (
		recorder *tracetest.SpanRecorder
		tracer   *service.OpenTelemetryTracer
	)

	BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
		tracer = &service.OpenTelemetryTracer{
			Tracer: provider.Tracer("service_test"),
		}
	})

	newObject := func(trivial bool) *service.Object {
		return service.MustNewObject(service.ObjectConfig{
			TypeNames: []string{"Query"},
			Resolvers: service.ResolverMap{
				"tasks": func(ctx context.Context, params service.ResolverParams) future.Future {
					return future.Ready([]interface{}{})
				},
				"node": func(ctx context.Context, params service.ResolverParams) future.Future {
					return future.Err(errors.New("node not found"))
				},
			},
			Trivial: trivial,
			Tracer:  tracer,
		})
	}

	It("records a span with arguments once the field completes", func() {
		object := newObject(false)
		f := object.Resolve(context.Background(), "tasks", service.FieldParams{
			Arguments: response.MustParse(`{"first": 2}`),
		})
		Expect(recorder.Ended()).Should(BeEmpty())

		_, err := future.BlockOn(f)
		Expect(err).ShouldNot(HaveOccurred())

		spans := recorder.Ended()
		Expect(spans).Should(HaveLen(1))
		Expect(spans[0].Name()).Should(Equal("Field: Query.tasks"))
		Expect(spans[0].Attributes()).Should(ContainElement(attribute.String("graphql.field", "tasks")))
		Expect(spans[0].Attributes()).Should(ContainElement(attribute.String("graphql.args.first", "2")))
	})

	It("marks the span of a failed field", func() {
		object := newObject(false)
		_, err := future.BlockOn(object.Resolve(context.Background(), "node", service.FieldParams{}))
		Expect(err).Should(HaveOccurred())

		spans := recorder.Ended()
		Expect(spans).Should(HaveLen(1))
		Expect(spans[0].Status().Code).Should(Equal(codes.Error))
		Expect(spans[0].Status().Description).Should(Equal("node not found"))
	})

	It("skips trivial fields", func() {
		object := newObject(true)
		_, err := future.BlockOn(object.Resolve(context.Background(), "tasks", service.FieldParams{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(recorder.Started()).Should(BeEmpty())
	})
})
