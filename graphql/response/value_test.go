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

package response_test

import (
	"github.com/botobag/graphqlservice/graphql/response"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value", func() {
	It("is null by default", func() {
		var v response.Value
		Expect(v.IsNull()).Should(BeTrue())
		Expect(v.Kind()).Should(Equal(response.KindNull))
		Expect(v.Interface()).Should(BeNil())
	})

	It("holds scalars", func() {
		b, ok := response.NewBoolean(true).BoolValue()
		Expect(ok).Should(BeTrue())
		Expect(b).Should(BeTrue())

		i, ok := response.NewInt(42).IntValue()
		Expect(ok).Should(BeTrue())
		Expect(i).Should(Equal(42))

		f, ok := response.NewInt(42).FloatValue()
		Expect(ok).Should(BeTrue())
		Expect(f).Should(Equal(42.0))

		_, ok = response.NewString("42").IntValue()
		Expect(ok).Should(BeFalse())

		token, ok := response.NewEnum("FIELD").EnumValue()
		Expect(ok).Should(BeTrue())
		Expect(token).Should(Equal("FIELD"))

		id, ok := response.NewID([]byte{0, 1, 2}).IDValue()
		Expect(ok).Should(BeTrue())
		Expect(id).Should(Equal([]byte{0, 1, 2}))
	})

	It("keeps map members in insertion order and rejects duplicated keys", func() {
		m := response.NewMap()
		Expect(m.Emplace("b", response.NewInt(1))).Should(BeTrue())
		Expect(m.Emplace("a", response.NewInt(2))).Should(BeTrue())
		Expect(m.Emplace("b", response.NewInt(3))).Should(BeFalse())

		members, ok := m.Members()
		Expect(ok).Should(BeTrue())
		Expect(members).Should(HaveLen(2))
		Expect(members[0].Key).Should(Equal("b"))
		Expect(members[1].Key).Should(Equal("a"))

		v, found := m.Find("b")
		Expect(found).Should(BeTrue())
		i, _ := v.IntValue()
		Expect(i).Should(Equal(1))

		_, found = m.Find("c")
		Expect(found).Should(BeFalse())
	})

	It("shares map members between copies", func() {
		original := response.NewMap()
		Expect(original.Emplace("a", response.NewInt(1))).Should(BeTrue())

		copied := original
		Expect(copied.Emplace("b", response.NewInt(2))).Should(BeTrue())

		v, found := original.Find("b")
		Expect(found).Should(BeTrue())
		Expect(v).Should(Equal(response.NewInt(2)))
		Expect(original.Len()).Should(Equal(2))

		Expect(original.Emplace("b", response.NewInt(3))).Should(BeFalse())
		Expect(original.Emplace("c", response.NewInt(3))).Should(BeTrue())
		_, found = copied.Find("c")
		Expect(found).Should(BeTrue())

		members, _ := copied.Members()
		Expect(members).Should(HaveLen(3))
		Expect(members[2].Key).Should(Equal("c"))
	})

	It("panics when mutating a value of the wrong kind", func() {
		v := response.NewInt(1)
		Expect(func() { v.Emplace("a", response.Null()) }).Should(Panic())
		Expect(func() { v.Append(response.Null()) }).Should(Panic())
	})

	It("converts from and to plain Go values", func() {
		v, err := response.ValueOf(map[string]interface{}{
			"list": []interface{}{1, "two", nil},
			"flag": false,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v.Kind()).Should(Equal(response.KindMap))

		members, _ := v.Members()
		Expect(members[0].Key).Should(Equal("flag"))
		Expect(members[1].Key).Should(Equal("list"))

		Expect(v.Interface()).Should(Equal(map[string]interface{}{
			"list": []interface{}{1, "two", nil},
			"flag": false,
		}))

		_, err = response.ValueOf(struct{}{})
		Expect(err).Should(HaveOccurred())
	})
})
