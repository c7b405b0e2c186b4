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
	"context"

	"github.com/botobag/graphqlservice/graphql/response"

	"github.com/json-iterator/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TraceFieldFinishFunc is called once the future of a traced field completes. err is nil on
// success.
type TraceFieldFinishFunc func(err error)

// Tracer observes field resolution.
type Tracer interface {
	// TraceField is called before the resolver runs. The returned context is passed to the
	// resolver. Trivial fields (metadata that is answered in place) are reported with trivial set.
	TraceField(ctx context.Context, typeName string, fieldName string, trivial bool, args response.Value) (context.Context, TraceFieldFinishFunc)
}

// NopTracer doesn't trace.
type NopTracer struct{}

var _ Tracer = NopTracer{}

// TraceField implements Tracer.
func (NopTracer) TraceField(ctx context.Context, typeName string, fieldName string, trivial bool, args response.Value) (context.Context, TraceFieldFinishFunc) {
	return ctx, func(error) {}
}

// OpenTelemetryTracer records a span for every non-trivial field.
type OpenTelemetryTracer struct {
	Tracer oteltrace.Tracer
}

var _ Tracer = (*OpenTelemetryTracer)(nil)

// DefaultOpenTelemetryTracer creates an OpenTelemetryTracer with the tracer from the global
// provider.
func DefaultOpenTelemetryTracer() *OpenTelemetryTracer {
	return &OpenTelemetryTracer{
		Tracer: otel.Tracer("github.com/botobag/graphqlservice"),
	}
}

// TraceField implements Tracer.
func (t *OpenTelemetryTracer) TraceField(ctx context.Context, typeName string, fieldName string, trivial bool, args response.Value) (context.Context, TraceFieldFinishFunc) {
	if trivial {
		return ctx, func(error) {}
	}

	spanCtx, span := t.Tracer.Start(ctx, "Field: "+typeName+"."+fieldName)

	attributes := []attribute.KeyValue{
		attribute.String("graphql.type", typeName),
		attribute.String("graphql.field", fieldName),
	}
	members, _ := args.Members()
	for _, member := range members {
		encoded, err := jsoniter.MarshalToString(member.Value)
		if err != nil {
			continue
		}
		attributes = append(attributes, attribute.String("graphql.args."+member.Key, encoded))
	}
	span.SetAttributes(attributes...)

	return spanCtx, func(err error) {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
