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

import (
	"errors"
)

// ready implements a Future that completes with a value on the first poll.
type ready struct {
	value interface{}
}

// Poll implements Future.
func (f ready) Poll(waker Waker) (PollResult, error) {
	return f.value, nil
}

// Ready returns a Future that is immediately ready with the given value. This is what accessors on
// schema metadata return since the value is already known when they are called.
func Ready(value interface{}) Future {
	return ready{value}
}

// errNilFailure replaces a nil error given to Err so that the returned future still fails.
var errNilFailure = errors.New("future failed without an error value")

// failed implements a Future that fails with an error on the first poll.
type failed struct {
	err error
}

// Poll implements Future.
func (f failed) Poll(waker Waker) (PollResult, error) {
	return nil, f.err
}

// Err returns a Future that immediately fails with err.
func Err(err error) Future {
	if err == nil {
		err = errNilFailure
	}
	return failed{err}
}
