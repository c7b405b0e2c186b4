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

// MapFunc transforms the value of a completed Future.
type MapFunc func(value interface{}) (interface{}, error)

// mapped implements the Future returned by Map.
type mapped struct {
	input Future
	fn    MapFunc
}

// Poll implements Future.
func (f *mapped) Poll(waker Waker) (PollResult, error) {
	result, err := f.input.Poll(waker)
	if err != nil {
		return nil, err
	}
	if IsPending(result) {
		return PollResultPending, nil
	}
	return f.fn(result)
}

// Map returns a Future that completes with fn applied to the value of f. Errors from f are passed
// through without calling fn.
func Map(f Future, fn MapFunc) Future {
	return &mapped{
		input: f,
		fn:    fn,
	}
}
