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
	"reflect"

	"github.com/uptrace/bun"

	"github.com/tomoncle/coded/labels"
	"github.com/tomoncle/coded/types"
)

// Declaration bundles one attribute's table, policy, and derived accessors.
// The owning type is associated by registry lookup; the model's method set is
// never touched.
type Declaration struct {
	owner  reflect.Type
	table  *Table
	policy Policy
	acc    *Accessors
}

// NewDeclaration derives the accessor surface and binds it to the owner type.
func NewDeclaration(owner reflect.Type, t *Table, p Policy) *Declaration {
	return &Declaration{
		owner:  baseType(owner),
		table:  t,
		policy: p,
		acc:    Generate(t, p),
	}
}

// Owner returns the owning model type.
func (d *Declaration) Owner() reflect.Type { return d.owner }

// OwnerName returns the owning model type's name, used in label lookup keys.
func (d *Declaration) OwnerName() string { return d.owner.Name() }

// Policy returns the declaration's resolution policy.
func (d *Declaration) Policy() Policy { return d.policy }

// Table returns the declaration's member table.
func (d *Declaration) Table() *Table { return d.table }

// Accessors returns the derived accessor surface.
func (d *Declaration) Accessors() *Accessors { return d.acc }

// Get, Set, Is, and Bang delegate to the derived accessors.
func (d *Declaration) Get(f StorageField) string { return d.acc.Get(f) }

func (d *Declaration) Set(f StorageField, input interface{}) error { return d.acc.Set(f, input) }

func (d *Declaration) Is(f StorageField, sym string) bool { return d.acc.Is(f, sym) }

func (d *Declaration) Bang(f StorageField, sym string) (string, error) { return d.acc.Bang(f, sym) }

// Check reports whether raw is acceptable for the storage field; the hook
// point for external per-field validation loops.
func (d *Declaration) Check(raw interface{}) bool {
	return d.policy.Check(d.table, raw)
}

// Options builds the select-option list in declaration order. Labels resolve
// through src keyed by (owner name, pluralized attribute, symbol); a missing
// entry falls back to the titleized symbol. src may be nil.
func (d *Declaration) Options(src labels.Source) []labels.Option {
	opts := make([]labels.Option, 0, d.table.Len())
	for _, sym := range d.table.Symbols() {
		label := ""
		ok := false
		if src != nil {
			label, ok = src.Lookup(d.OwnerName(), d.acc.CollectionName(), sym)
		}
		if !ok {
			label = labels.Titleize(sym)
		}
		value, _ := d.acc.Value(sym)
		opts = append(opts, labels.Option{Label: label, Symbol: sym, Value: value})
	}
	return opts
}

// InFilter builds a query filter restricting column to the given members'
// storage values. An empty column defaults to the declared storage field.
func (d *Declaration) InFilter(column string, syms ...string) (*types.QueryFilter, error) {
	values, err := d.acc.Values(syms...)
	if err != nil {
		return nil, err
	}
	if column == "" {
		column = d.policy.StorageField
	}
	return types.NewQueryFilter(column+" IN (?)", bun.In(values)), nil
}
