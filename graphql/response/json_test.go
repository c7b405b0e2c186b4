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
	"encoding/json"

	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSON", func() {
	It("writes map members in insertion order", func() {
		m := response.NewMap()
		m.Emplace("zeta", response.NewInt(1))
		m.Emplace("alpha", response.NewList(response.NewFloat(1.5), response.Null()))
		m.Emplace("kind", response.NewEnum("OBJECT"))

		data, err := json.Marshal(m)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(`{"zeta":1,"alpha":[1.5,null],"kind":"OBJECT"}`))
	})

	It("writes ID in base64", func() {
		Expect(response.NewID([]byte("fakeTaskId"))).Should(testutil.SerializeToJSONAs(`"ZmFrZVRhc2tJZA=="`))
	})

	It("parses objects preserving member order", func() {
		v, err := response.Parse([]byte(`{"b": true, "a": [1, 2.5, "x", null]}`))
		Expect(err).ShouldNot(HaveOccurred())

		members, ok := v.Members()
		Expect(ok).Should(BeTrue())
		Expect(members[0].Key).Should(Equal("b"))
		b, _ := members[0].Value.BoolValue()
		Expect(b).Should(BeTrue())

		items, ok := members[1].Value.ListValue()
		Expect(ok).Should(BeTrue())
		Expect(items[0].Kind()).Should(Equal(response.KindInt))
		Expect(items[1].Kind()).Should(Equal(response.KindFloat))
		Expect(items[2].Kind()).Should(Equal(response.KindString))
		Expect(items[3].IsNull()).Should(BeTrue())
	})

	It("parses a top-level scalar", func() {
		v, err := response.Parse([]byte("42"))
		Expect(err).ShouldNot(HaveOccurred())
		i, ok := v.IntValue()
		Expect(ok).Should(BeTrue())
		Expect(i).Should(Equal(42))
	})

	It("rejects malformed documents", func() {
		_, err := response.Parse([]byte(`{"a": }`))
		Expect(err).Should(HaveOccurred())

		_, err = response.Parse([]byte(`{"a": 1, "a": 2}`))
		Expect(err).Should(HaveOccurred())
	})

	It("round trips through MustParse", func() {
		v := response.MustParse(`{"first": 2, "after": "cursor"}`)
		Expect(v).Should(testutil.SerializeToJSONAs(`{"first": 2, "after": "cursor"}`))
	})
})
