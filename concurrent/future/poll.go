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

// A PollResult is the value returned from Future.Poll. It is either PollResultPending or the value
// of the completed future.
type PollResult interface{}

// pollPendingResult is the type of PollResultPending. No other value has this type so a completed
// future can never be mistaken for a pending one, even when its value is nil.
type pollPendingResult int

// PollResultPending is returned by Poll when the value of the future is not ready yet.
const PollResultPending = pollPendingResult(0)

// IsPending returns true if result is PollResultPending.
func IsPending(result PollResult) bool {
	_, pending := result.(pollPendingResult)
	return pending
}
