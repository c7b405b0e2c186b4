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
	"log"
	"runtime"
)

// Logger receives diagnostics from the runtime.
type Logger interface {
	// Logf reports an informational message.
	Logf(format string, args ...interface{})

	// LogPanic reports a panic value recovered from a resolver.
	LogPanic(ctx context.Context, value interface{})
}

// DefaultLogger writes through the standard log package.
type DefaultLogger struct{}

var _ Logger = DefaultLogger{}

// Logf implements Logger.
func (DefaultLogger) Logf(format string, args ...interface{}) {
	log.Printf("graphqlservice: "+format, args...)
}

// LogPanic implements Logger. It includes the stack of the goroutine that recovered the panic.
func (DefaultLogger) LogPanic(ctx context.Context, value interface{}) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	log.Printf("graphqlservice: panic occurred: %v\n%s", value, buf)
}

// NopLogger discards everything.
type NopLogger struct{}

var _ Logger = NopLogger{}

// Logf implements Logger.
func (NopLogger) Logf(format string, args ...interface{}) {}

// LogPanic implements Logger.
func (NopLogger) LogPanic(ctx context.Context, value interface{}) {}
