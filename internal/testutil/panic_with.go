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

package testutil

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// panicWithMatcher runs the actual function and matches the recovered value against matcher.
type panicWithMatcher struct {
	matcher types.GomegaMatcher
	value   interface{}
}

// Match implements types.GomegaMatcher.
func (m *panicWithMatcher) Match(actual interface{}) (success bool, err error) {
	if actual == nil {
		return false, fmt.Errorf("PanicWithGraphQLError expects a non-nil actual")
	}

	actualType := reflect.TypeOf(actual)
	if actualType.Kind() != reflect.Func || actualType.NumIn() != 0 || actualType.NumOut() != 0 {
		return false, fmt.Errorf("PanicWithGraphQLError expects a function with no arguments and no return value. Got:\n%s", format.Object(actual, 1))
	}

	panicked := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				m.value = r
			}
		}()
		reflect.ValueOf(actual).Call([]reflect.Value{})
	}()

	if !panicked {
		return false, nil
	}
	return m.matcher.Match(m.value)
}

// FailureMessage implements types.GomegaMatcher.
func (m *panicWithMatcher) FailureMessage(actual interface{}) (message string) {
	if m.value == nil {
		return format.Message(actual, "to panic")
	}
	return fmt.Sprintf("Expected function to panic with a matching value\n%s", m.matcher.FailureMessage(m.value))
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (m *panicWithMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected function not to panic with a matching value\n%s", m.matcher.NegatedFailureMessage(m.value))
}
