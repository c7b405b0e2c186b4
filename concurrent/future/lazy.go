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

package future

// LazyFunc computes the value of a future created by Lazy.
type LazyFunc func() (interface{}, error)

// lazy implements the Future returned by Lazy.
type lazy struct {
	fn    LazyFunc
	value interface{}
	err   error
	done  bool
}

// Poll implements Future.
func (f *lazy) Poll(waker Waker) (PollResult, error) {
	if !f.done {
		f.value, f.err = f.fn()
		f.fn = nil
		f.done = true
	}
	return f.value, f.err
}

// Lazy returns a Future whose value is computed by fn on the calling goroutine the first time the
// future is polled. The outcome is memoized so further polls do not call fn again.
func Lazy(fn LazyFunc) Future {
	return &lazy{fn: fn}
}
