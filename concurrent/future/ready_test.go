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

package future_test

import (
	"errors"

	"github.com/botobag/graphqlservice/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ready", func() {
	It("is ready with the value on the first poll", func() {
		Expect(future.Ready(1).Poll(future.NopWaker)).Should(Equal(1))
	})

	It("is ready with a nil value to represent absence", func() {
		result, err := future.Ready(nil).Poll(future.NopWaker)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result).Should(BeNil())
		Expect(future.IsPending(result)).Should(BeFalse())
	})
})

var _ = Describe("Err", func() {
	It("fails with the given error", func() {
		testErr := errors.New("ready with an error")
		_, err := future.Err(testErr).Poll(future.NopWaker)
		Expect(err).Should(MatchError(testErr))
	})

	It("still fails when given a nil error", func() {
		_, err := future.Err(nil).Poll(future.NopWaker)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("Lazy", func() {
	It("computes the value on first poll only", func() {
		calls := 0
		f := future.Lazy(func() (interface{}, error) {
			calls++
			return "value", nil
		})
		Expect(calls).Should(Equal(0))

		Expect(f.Poll(future.NopWaker)).Should(Equal("value"))
		Expect(f.Poll(future.NopWaker)).Should(Equal("value"))
		Expect(calls).Should(Equal(1))
	})
})

var _ = Describe("Map", func() {
	It("transforms the value of the input", func() {
		f := future.Map(future.Ready(20), func(value interface{}) (interface{}, error) {
			return value.(int) + 1, nil
		})
		Expect(future.BlockOn(f)).Should(Equal(21))
	})

	It("passes errors from the input through", func() {
		testErr := errors.New("input failed")
		called := false
		f := future.Map(future.Err(testErr), func(value interface{}) (interface{}, error) {
			called = true
			return value, nil
		})
		_, err := future.BlockOn(f)
		Expect(err).Should(MatchError(testErr))
		Expect(called).Should(BeFalse())
	})

	It("stays pending while the input is pending", func() {
		input := &deferredFuture{}
		f := future.Map(input, func(value interface{}) (interface{}, error) {
			return value, nil
		})
		Expect(f.Poll(future.NopWaker)).Should(Equal(future.PollResultPending))
	})
})
