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

// join implements the Future returned by Join.
type join struct {
	inputs []Future
	// results[i] holds PollResultPending until inputs[i] completes.
	results []interface{}
	// Number of inputs that have not completed.
	remaining int
}

// Poll implements Future.
func (f *join) Poll(waker Waker) (PollResult, error) {
	for i, input := range f.inputs {
		if !IsPending(f.results[i]) {
			continue
		}

		result, err := input.Poll(waker)
		if err != nil {
			return nil, err
		}

		if !IsPending(result) {
			f.results[i] = result
			f.remaining--
		}
	}

	if f.remaining > 0 {
		return PollResultPending, nil
	}

	return f.results, nil
}

// Join returns a Future that drives all of the given futures and completes with their values
// collected into an []interface{} in argument order. It fails with the first error reported by any
// input.
func Join(fs ...Future) Future {
	results := make([]interface{}, len(fs))
	for i := range results {
		results[i] = PollResultPending
	}

	return &join{
		inputs:    fs,
		results:   results,
		remaining: len(fs),
	}
}
