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

package introspection

// deprecatable is implemented by the descriptors that can be deprecated.
type deprecatable interface {
	IsDeprecated() bool
}

// filterDeprecated returns the items to report for a fields or enumValues query. Deprecated items
// are dropped unless includeDeprecated points to true. The relative order of the items is kept and
// the result never aliases items.
func filterDeprecated[T deprecatable](items []T, includeDeprecated *bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if (includeDeprecated != nil && *includeDeprecated) || !item.IsDeprecated() {
			result = append(result, item)
		}
	}
	return result
}

// Deprecated returns a deprecation reason to be given to FieldConfig or EnumValueConfig. An element
// is deprecated whenever a reason is given, including an empty one.
func Deprecated(reason string) *string {
	return &reason
}

// DefaultDeprecationReason is the reason used by @deprecated when none is given.
const DefaultDeprecationReason = "No longer supported"
