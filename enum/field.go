/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package enum

import "reflect"

// StorageField is the boundary to the persistence collaborator: get and set
// the raw value of the configured storage column. RawValue returns nil when
// the column is unset. The core never manages column schema or querying.
type StorageField interface {
	RawValue() interface{}
	SetRawValue(interface{})
}

// Bind adapts a pointer-typed model column to a StorageField. A nil pointer
// represents the unset state, which plain scalar columns cannot distinguish
// from their zero value.
func Bind[T comparable](p **T) StorageField {
	return pointerField[T]{p: p}
}

type pointerField[T comparable] struct {
	p **T
}

func (f pointerField[T]) RawValue() interface{} {
	if *f.p == nil {
		return nil
	}
	return **f.p
}

func (f pointerField[T]) SetRawValue(v interface{}) {
	if v == nil {
		*f.p = nil
		return
	}
	if tv, ok := v.(T); ok {
		x := tv
		*f.p = &x
		return
	}
	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rv.Type().ConvertibleTo(rt) {
		x := rv.Convert(rt).Interface().(T)
		*f.p = &x
		return
	}
	// Incompatible pass-through input: the column cannot hold it.
	*f.p = nil
}

// Var returns an in-memory StorageField, useful for tests and for callers
// that manage persistence themselves.
func Var() StorageField {
	return &varField{}
}

type varField struct {
	raw interface{}
}

func (f *varField) RawValue() interface{}     { return f.raw }
func (f *varField) SetRawValue(v interface{}) { f.raw = v }
