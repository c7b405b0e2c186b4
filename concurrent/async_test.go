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

package concurrent_test

import (
	"errors"

	"github.com/botobag/graphqlservice/concurrent"
	"github.com/botobag/graphqlservice/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Async", func() {
	var executor *concurrent.GoroutineExecutor

	BeforeEach(func() {
		executor = concurrent.MustNewGoroutineExecutor(concurrent.GoroutineExecutorConfig{
			MaxConcurrency: 4,
		})
	})

	AfterEach(func() {
		Expect(shutdownExecutor(executor)).Should(Succeed())
	})

	It("is pending until the task completes", func() {
		release := make(chan struct{})
		f := concurrent.AsyncFunc(executor, func() (interface{}, error) {
			<-release
			return "deferred", nil
		})

		Expect(f.Poll(future.NopWaker)).Should(Equal(future.PollResultPending))

		close(release)
		Expect(future.BlockOn(f)).Should(Equal("deferred"))
	})

	It("wakes the latest waker on completion", func() {
		release := make(chan struct{})
		f := concurrent.AsyncFunc(executor, func() (interface{}, error) {
			<-release
			return nil, nil
		})

		woken := make(chan struct{})
		Expect(f.Poll(future.NopWaker)).Should(Equal(future.PollResultPending))
		Expect(f.Poll(future.WakerFunc(func() error {
			close(woken)
			return nil
		}))).Should(Equal(future.PollResultPending))

		close(release)
		Eventually(woken).Should(BeClosed())
	})

	It("fails with the task error", func() {
		testErr := errors.New("resolver failed")
		f := concurrent.AsyncFunc(executor, func() (interface{}, error) {
			return nil, testErr
		})
		_, err := future.BlockOn(f)
		Expect(err).Should(MatchError(testErr))
	})

	It("fails when the executor rejects the task", func() {
		Expect(shutdownExecutor(executor)).Should(Succeed())
		f := concurrent.AsyncFunc(executor, func() (interface{}, error) {
			return nil, nil
		})
		_, err := future.BlockOn(f)
		Expect(err).Should(MatchError(concurrent.ErrExecutorShutdown))
	})
})
