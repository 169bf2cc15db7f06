// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package projection maps internal entities onto their wire shape.
//
// A projection is a plain data table of field name → accessor ([Fields]).
// Rendering walks the table in order and produces an [Object] whose JSON
// encoding keeps that order, so the output shape of every resource is
// declared in one place and does not depend on struct layout or tags.
package projection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field declares one output member.
type Field[T any] struct {
	// Name is the JSON key.
	Name string

	// Value extracts the member value from the entity. Returning an untyped
	// nil renders JSON null (or omits the member, see OmitNil).
	Value func(T) any

	// OmitNil drops the member entirely when Value returns nil.
	OmitNil bool
}

// Fields is an ordered projection table for entities of type T.
type Fields[T any] []Field[T]

// Member is a single key/value pair of an [Object].
type Member struct {
	Key   string
	Value any
}

// Object is an insertion-ordered JSON object.
type Object []Member

// Project renders v through the table.
func (f Fields[T]) Project(v T) Object {
	obj := make(Object, 0, len(f))
	for _, field := range f {
		value := field.Value(v)
		if value == nil && field.OmitNil {
			continue
		}
		obj = append(obj, Member{Key: field.Name, Value: value})
	}
	return obj
}

// ProjectList renders every item through the table. The result is never nil
// so that an empty list encodes as [] rather than null.
func (f Fields[T]) ProjectList(items []T) []Object {
	list := make([]Object, 0, len(items))
	for _, item := range items {
		list = append(list, f.Project(item))
	}
	return list
}

// Get returns the value stored under key and whether it is present.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the object preserving member order.
func (o Object) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')

	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, fmt.Errorf("error encoding key %q: %w", m.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, fmt.Errorf("error encoding value of %q: %w", m.Key, err)
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Optional dereferences a pointer, returning an untyped nil when p is nil.
// It lets tables expose nullable columns without leaking typed nils.
func Optional[V any](p *V) any {
	if p == nil {
		return nil
	}
	return *p
}
