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

// Package response defines Value, the generic representation of argument and result values that
// flow through resolvers.
package response

import (
	"fmt"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Enumeration of Kind
const (
	KindNull Kind = iota
	KindBoolean
	KindInt
	KindFloat
	KindString
	KindEnum
	KindID
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindEnum:
		return "Enum"
	case KindID:
		return "ID"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Member is a key/value entry of a map Value.
type Member struct {
	Key   string
	Value Value
}

// Value holds one of null, boolean, int, float, string, enum token, ID bytes, list or map. The zero
// Value is null. Maps keep their members in insertion order and reject duplicate keys. Like Go maps,
// copies of a map Value share its members: a member emplaced through one copy is seen by all.
type Value struct {
	kind    Kind
	boolean bool
	integer int
	float   float64
	// String, enum token or ID bytes
	str string

	list []Value
	m    *mapData
}

// mapData holds the members of a map Value.
type mapData struct {
	members []Member
	// Index of each key in members
	index map[string]int
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// NewBoolean returns a Boolean Value.
func NewBoolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// NewInt returns an Int Value.
func NewInt(i int) Value {
	return Value{kind: KindInt, integer: i}
}

// NewFloat returns a Float Value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// NewString returns a String Value.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewEnum returns a Value holding the enum token.
func NewEnum(token string) Value {
	return Value{kind: KindEnum, str: token}
}

// NewID returns a Value holding opaque ID bytes. IDs are encoded in base64 when written as JSON.
func NewID(id []byte) Value {
	return Value{kind: KindID, str: string(id)}
}

// NewList returns a List Value with the given items.
func NewList(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, list: items}
}

// NewMap returns an empty Map Value. Use Emplace to add members.
func NewMap() Value {
	return Value{kind: KindMap, m: &mapData{index: map[string]int{}}}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// BoolValue returns the boolean held by v.
func (v Value) BoolValue() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// IntValue returns the integer held by v.
func (v Value) IntValue() (int, bool) {
	return v.integer, v.kind == KindInt
}

// FloatValue returns the number held by v. An Int is widened to float64.
func (v Value) FloatValue() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.float, true
	case KindInt:
		return float64(v.integer), true
	}
	return 0, false
}

// StringValue returns the string held by v.
func (v Value) StringValue() (string, bool) {
	return v.str, v.kind == KindString
}

// EnumValue returns the enum token held by v. A String is accepted as well since enum tokens
// arriving in variables are strings.
func (v Value) EnumValue() (string, bool) {
	return v.str, v.kind == KindEnum || v.kind == KindString
}

// IDValue returns the ID bytes held by v.
func (v Value) IDValue() ([]byte, bool) {
	if v.kind != KindID {
		return nil, false
	}
	return []byte(v.str), true
}

// ListValue returns the items of a List.
func (v Value) ListValue() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// Members returns the members of a Map in insertion order.
func (v Value) Members() ([]Member, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m.members, true
}

// Len returns the number of items in a List or members in a Map and 0 for other kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m.members)
	}
	return 0
}

// Find looks up the member with key in a Map. It returns false if v is not a Map or has no such
// member.
func (v Value) Find(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	i, exists := v.m.index[key]
	if !exists {
		return Value{}, false
	}
	return v.m.members[i].Value, true
}

// Emplace adds a member to a Map. It returns false without changing v if the key already exists. It
// panics if v is not a Map.
func (v *Value) Emplace(key string, value Value) bool {
	if v.kind != KindMap {
		panic(fmt.Sprintf("response: Emplace on a %s value", v.kind))
	}
	m := v.m
	if _, exists := m.index[key]; exists {
		return false
	}
	m.index[key] = len(m.members)
	m.members = append(m.members, Member{key, value})
	return true
}

// Append adds an item to a List. It panics if v is not a List.
func (v *Value) Append(item Value) {
	if v.kind != KindList {
		panic(fmt.Sprintf("response: Append on a %s value", v.kind))
	}
	v.list = append(v.list, item)
}

// Interface converts v into plain Go values: nil, bool, int, float64, string (for String and Enum),
// []byte (for ID), []interface{} and map[string]interface{}.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBoolean:
		return v.boolean
	case KindInt:
		return v.integer
	case KindFloat:
		return v.float
	case KindString, KindEnum:
		return v.str
	case KindID:
		return []byte(v.str)
	case KindList:
		items := make([]interface{}, len(v.list))
		for i, item := range v.list {
			items[i] = item.Interface()
		}
		return items
	case KindMap:
		m := make(map[string]interface{}, len(v.m.members))
		for _, member := range v.m.members {
			m[member.Key] = member.Value.Interface()
		}
		return m
	}
	return nil
}
