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

package response

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unsafe"

	"github.com/json-iterator/go"
)

// valueEncoder implements jsoniter.ValEncoder to write Value as JSON. Map members are written in
// insertion order.
type valueEncoder struct{}

var _ jsoniter.ValEncoder = valueEncoder{}

// IsEmpty implements jsoniter.ValEncoder.
func (valueEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Value)(ptr).IsNull()
}

// Encode implements jsoniter.ValEncoder.
func (valueEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	writeValue((*Value)(ptr), stream)
}

func writeValue(v *Value, stream *jsoniter.Stream) {
	switch v.kind {
	case KindNull:
		stream.WriteNil()
	case KindBoolean:
		stream.WriteBool(v.boolean)
	case KindInt:
		stream.WriteInt(v.integer)
	case KindFloat:
		stream.WriteFloat64(v.float)
	case KindString, KindEnum:
		stream.WriteString(v.str)
	case KindID:
		stream.WriteString(base64.StdEncoding.EncodeToString([]byte(v.str)))
	case KindList:
		stream.WriteArrayStart()
		for i := range v.list {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(&v.list[i], stream)
		}
		stream.WriteArrayEnd()
	case KindMap:
		stream.WriteObjectStart()
		members := v.m.members
		for i := range members {
			if i > 0 {
				stream.WriteMore()
			}
			member := &members[i]
			stream.WriteObjectField(member.Key)
			writeValue(&member.Value, stream)
		}
		stream.WriteObjectEnd()
	default:
		stream.Error = fmt.Errorf("response: unknown value kind %s", v.kind)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(&v)
}

// Parse decodes a JSON document into a Value. Object members keep their order in the document and
// numbers without a fraction or exponent become Int. Since JSON has no enum or ID, strings stay
// String; EnumValue accepts String values.
func Parse(data []byte) (Value, error) {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	v := readValue(iter)
	// Reaching the end of data while reading a number leaves io.EOF in iter.Error.
	if iter.Error != nil && iter.Error != io.EOF {
		return Value{}, fmt.Errorf("response: failed to parse JSON: %s", iter.Error)
	}
	if iter.Error == nil && iter.WhatIsNext() != jsoniter.InvalidValue {
		return Value{}, fmt.Errorf("response: unexpected data after JSON value")
	}
	return v, nil
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null()

	case jsoniter.BoolValue:
		return NewBoolean(iter.ReadBool())

	case jsoniter.NumberValue:
		number := string(iter.ReadNumber())
		if !strings.ContainsAny(number, ".eE") {
			if i, err := strconv.Atoi(number); err == nil {
				return NewInt(i)
			}
		}
		f, err := strconv.ParseFloat(number, 64)
		if err != nil {
			iter.ReportError("readValue", err.Error())
			return Value{}
		}
		return NewFloat(f)

	case jsoniter.StringValue:
		return NewString(iter.ReadString())

	case jsoniter.ArrayValue:
		list := NewList()
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			list.Append(readValue(iter))
			return iter.Error == nil
		})
		return list

	case jsoniter.ObjectValue:
		m := NewMap()
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			if !m.Emplace(key, readValue(iter)) {
				iter.ReportError("readValue", fmt.Sprintf("duplicate key %q", key))
				return false
			}
			return iter.Error == nil
		})
		return m
	}

	iter.ReportError("readValue", "unexpected JSON token")
	return Value{}
}

// MustParse is like Parse but panics on error.
func MustParse(data string) Value {
	v, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return v
}

func init() {
	jsoniter.RegisterTypeEncoder("response.Value", valueEncoder{})
}
