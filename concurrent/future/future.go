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

// A Future is a value that is produced asynchronously. Every field accessor in the service runtime
// answers with a Future so that callers handle values computed in place and values produced later
// by an executor in exactly the same way.
//
// Futures are driven by polling. Poll never blocks: it either returns the final value, returns an
// error, or returns PollResultPending after arranging for waker to be called once progress can be
// made. The poll/wake protocol follows the one used by Rust's futures [0].
//
// The return value of Poll is interpreted as follows:
//
//	* (any, err) with a non-nil err: the future failed with err.
//	* (PollResultPending, nil): the value is not available yet; waker.Wake is called later.
//	* (value, nil): the future completed with value. A nil value is a valid result and usually
//	  stands for "absent".
//
// A future that has completed must not be polled again unless its documentation says so. Only the
// Waker given to the latest call to Poll is required to be woken.
//
// [0]: https://doc.rust-lang.org/std/future/trait.Future.html
type Future interface {
	Poll(waker Waker) (PollResult, error)
}
