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

package coded

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tomoncle/coded/enum"
)

// Field binds the storage column of a declared attribute on a model instance.
// The model must be a pointer to a struct of the declaring type. The column
// is located by its bun tag first, then by the snake-cased Go field name.
// Columns typed types.NullCode (or anything satisfying the storage field
// contract) are used directly; pointer columns treat nil as unset; plain
// scalar columns cannot distinguish unset from their zero value.
func Field(model interface{}, attribute string) (enum.StorageField, error) {
	decl, err := LookupFor(model, attribute)
	if err != nil {
		return nil, err
	}
	return bindColumn(model, decl.Policy().StorageField)
}

func bindColumn(model interface{}, column string) (enum.StorageField, error) {
	rv := reflect.ValueOf(model)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a non-nil struct pointer, got %T", model)
	}
	sv := rv.Elem()
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		if columnName(f) != column {
			continue
		}
		fv := sv.Field(i)
		if sf, ok := fv.Addr().Interface().(enum.StorageField); ok {
			return sf, nil
		}
		if fv.Kind() == reflect.Ptr {
			return reflectPointerField{v: fv}, nil
		}
		return reflectScalarField{v: fv}, nil
	}
	return nil, fmt.Errorf("model %s has no storage column %q", st.Name(), column)
}

// columnName resolves a struct field's column: the first token of its bun tag
// when present, otherwise the snake-cased field name.
func columnName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("bun"); ok {
		name := strings.Split(tag, ",")[0]
		if name != "" {
			return name
		}
	}
	return snakeCase(f.Name)
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type reflectPointerField struct {
	v reflect.Value
}

func (f reflectPointerField) RawValue() interface{} {
	if f.v.IsNil() {
		return nil
	}
	return f.v.Elem().Interface()
}

func (f reflectPointerField) SetRawValue(raw interface{}) {
	if raw == nil {
		f.v.Set(reflect.Zero(f.v.Type()))
		return
	}
	elem := f.v.Type().Elem()
	rv := reflect.ValueOf(raw)
	if !rv.Type().ConvertibleTo(elem) {
		f.v.Set(reflect.Zero(f.v.Type()))
		return
	}
	p := reflect.New(elem)
	p.Elem().Set(rv.Convert(elem))
	f.v.Set(p)
}

type reflectScalarField struct {
	v reflect.Value
}

func (f reflectScalarField) RawValue() interface{} {
	return f.v.Interface()
}

func (f reflectScalarField) SetRawValue(raw interface{}) {
	if raw == nil {
		f.v.Set(reflect.Zero(f.v.Type()))
		return
	}
	rv := reflect.ValueOf(raw)
	if rv.Type().ConvertibleTo(f.v.Type()) {
		f.v.Set(rv.Convert(f.v.Type()))
	}
}
