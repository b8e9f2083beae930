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

import (
	"fmt"

	"github.com/jinzhu/inflection"
)

// Accessors is the callable surface derived from a table and policy at
// declaration time. Which per-member entries exist is decided once here;
// runtime dispatch is a map lookup, never reflection.
type Accessors struct {
	table      *Table
	policy     Policy
	collection string
	predicates map[string]string // generated name -> member symbol
	mutators   map[string]string
	classAcc   map[string]string
}

// Generate derives the accessor surface. Per-member name tables honor the
// policy's prefix and suppression level.
func Generate(t *Table, p Policy) *Accessors {
	a := &Accessors{
		table:      t,
		policy:     p,
		collection: inflection.Plural(p.Attribute),
	}
	if p.Suppression == SuppressMemberMethods {
		return a
	}
	a.predicates = make(map[string]string, t.Len())
	a.mutators = make(map[string]string, t.Len())
	for _, sym := range t.order {
		name := p.MethodName(sym)
		a.predicates[name] = sym
		a.mutators[name] = sym
	}
	if p.Suppression != SuppressClassAccessors {
		a.classAcc = make(map[string]string, t.Len())
		for _, sym := range t.order {
			a.classAcc[p.MethodName(sym)] = sym
		}
	}
	return a
}

// Get returns the symbol matching the current storage value, or "" when the
// field is unset or holds an unrecognized value. Reads never fail; only
// writes can.
func (a *Accessors) Get(f StorageField) string {
	raw := f.RawValue()
	if raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok && s == "" {
		return ""
	}
	sym, ok := a.table.valToSym[normalizeRaw(raw)]
	if !ok {
		return ""
	}
	return sym
}

// Set resolves input through Coerce and assigns the member's storage value.
// nil clears the field. Unrecognized input fails ErrInvalidMember under a
// strict policy; otherwise the raw input is assigned unchanged, which breaks
// the guarantee that storage always holds a recognized value.
func (a *Accessors) Set(f StorageField, input interface{}) error {
	if input == nil {
		f.SetRawValue(nil)
		return nil
	}
	sym, err := a.table.Coerce(input)
	if err != nil {
		if a.policy.Strict {
			return fmt.Errorf("%w: %s = %v", ErrInvalidMember, a.policy.Attribute, input)
		}
		f.SetRawValue(normalizeRaw(input))
		return nil
	}
	f.SetRawValue(a.table.symToVal[sym])
	return nil
}

// Is reports whether the field currently holds sym.
func (a *Accessors) Is(f StorageField, sym string) bool {
	return sym != "" && a.Get(f) == sym
}

// Bang sets the field to sym and returns the symbol.
func (a *Accessors) Bang(f StorageField, sym string) (string, error) {
	if err := a.Set(f, sym); err != nil {
		return "", err
	}
	return sym, nil
}

// Predicate returns the bound per-member predicate registered under name, or
// false when the name was never generated.
func (a *Accessors) Predicate(name string) (func(StorageField) bool, bool) {
	sym, ok := a.predicates[name]
	if !ok {
		return nil, false
	}
	return func(f StorageField) bool { return a.Is(f, sym) }, true
}

// Mutator returns the bound per-member mutator registered under name.
func (a *Accessors) Mutator(name string) (func(StorageField) (string, error), bool) {
	sym, ok := a.mutators[name]
	if !ok {
		return nil, false
	}
	return func(f StorageField) (string, error) { return a.Bang(f, sym) }, true
}

// ClassAccessor returns the bound per-member class accessor registered under
// name; it yields the member's value as Value does.
func (a *Accessors) ClassAccessor(name string) (func() (interface{}, error), bool) {
	sym, ok := a.classAcc[name]
	if !ok {
		return nil, false
	}
	return func() (interface{}, error) { return a.Value(sym) }, true
}

// MemberNames returns the generated per-member method names in declaration
// order, empty under SuppressMemberMethods.
func (a *Accessors) MemberNames() []string {
	if a.predicates == nil {
		return nil
	}
	names := make([]string, 0, a.table.Len())
	for _, sym := range a.table.order {
		names = append(names, a.policy.MethodName(sym))
	}
	return names
}

// ClassAccessorNames returns the generated class accessor names in
// declaration order.
func (a *Accessors) ClassAccessorNames() []string {
	if a.classAcc == nil {
		return nil
	}
	names := make([]string, 0, a.table.Len())
	for _, sym := range a.table.order {
		names = append(names, a.policy.MethodName(sym))
	}
	return names
}

// CollectionName is the pluralized attribute name the collection accessor is
// published under.
func (a *Accessors) CollectionName() string { return a.collection }

// All returns the full symbol/value mapping in declaration order, never
// sorted by value. Object-backed members yield their scalar storage key.
func (a *Accessors) All() []Member {
	members := make([]Member, 0, a.table.Len())
	for _, sym := range a.table.order {
		members = append(members, Member{Sym: sym, Value: a.table.symToVal[sym]})
	}
	return members
}

// Value returns one member's storage value, or the original object when the
// policy reveals objects.
func (a *Accessors) Value(sym string) (interface{}, error) {
	raw, err := a.table.ValueOf(sym)
	if err != nil {
		return nil, err
	}
	if a.policy.RevealObject {
		if obj, ok := a.table.ObjectOf(sym); ok {
			return obj, nil
		}
	}
	return raw, nil
}

// Values returns the storage values for the given symbols in argument order,
// suitable for IN-style query lists.
func (a *Accessors) Values(syms ...string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(syms))
	for _, sym := range syms {
		raw, err := a.table.ValueOf(sym)
		if err != nil {
			return nil, err
		}
		values = append(values, raw)
	}
	return values, nil
}
