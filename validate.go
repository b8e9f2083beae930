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
	"errors"
	"fmt"
	"reflect"

	"github.com/tomoncle/coded/enum"
)

// FieldError reports one storage column holding a value outside its declared
// member set.
type FieldError struct {
	Attribute string
	Column    string
	Value     interface{}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: value %v is not a declared member (column %s)", e.Attribute, e.Value, e.Column)
}

// Validate checks every declared enum attribute of a model instance through
// the passive validation channel: unset columns pass, anything else must be a
// declared storage value. It is independent of the declarations' strictness
// and is meant to be called from an external validation loop, typically the
// model's bun.BeforeAppendModelHook:
//
//	func (u *User) BeforeAppendModel(ctx context.Context, q bun.Query) error {
//		return coded.Validate(u)
//	}
//
// Conditional skips, nil-allowance beyond the unset rule, and custom messages
// belong to that surrounding loop, not here.
func Validate(model interface{}) error {
	owner := reflect.TypeOf(model)
	registry := enum.DefaultRegistry()
	var errs []error
	for _, attribute := range registry.Declared(owner) {
		decl, err := registry.Lookup(owner, attribute)
		if err != nil {
			return err
		}
		field, err := bindColumn(model, decl.Policy().StorageField)
		if err != nil {
			return err
		}
		if raw := field.RawValue(); !decl.Check(raw) {
			errs = append(errs, &FieldError{
				Attribute: attribute,
				Column:    decl.Policy().StorageField,
				Value:     raw,
			})
		}
	}
	return errors.Join(errs...)
}
