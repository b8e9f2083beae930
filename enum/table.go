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

import "fmt"

// Table is the canonical bidirectional mapping between member symbols and raw
// storage values for one declared attribute. It is built once at declaration
// time and never mutated afterwards, so unsynchronized concurrent reads are
// safe.
type Table struct {
	order        []string
	symToVal     map[string]interface{}
	valToSym     map[interface{}]string
	symToObj     map[string]interface{}
	objectBacked bool
}

// Build constructs a Table from a member spec, deriving scalar storage keys
// for object-backed values. Symbols and values must both be unique.
func Build(members []Member) (*Table, error) {
	t := &Table{
		order:    make([]string, 0, len(members)),
		symToVal: make(map[string]interface{}, len(members)),
		valToSym: make(map[interface{}]string, len(members)),
		symToObj: make(map[string]interface{}),
	}
	for _, m := range members {
		if m.Sym == "" {
			return nil, fmt.Errorf("%w: empty symbol", ErrUnresolvableKey)
		}
		if _, ok := t.symToVal[m.Sym]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, m.Sym)
		}
		raw := m.Value
		if raw != nil && !isScalar(raw) {
			key, err := KeyOf(raw)
			if err != nil {
				return nil, fmt.Errorf("member %s: %w", m.Sym, err)
			}
			t.symToObj[m.Sym] = raw
			t.objectBacked = true
			raw = key
		}
		raw = normalizeRaw(raw)
		if prev, ok := t.valToSym[raw]; ok {
			return nil, fmt.Errorf("%w: %v shared by %s and %s", ErrDuplicateValue, raw, prev, m.Sym)
		}
		t.symToVal[m.Sym] = raw
		t.valToSym[raw] = m.Sym
		t.order = append(t.order, m.Sym)
	}
	return t, nil
}

// Symbols returns the member symbols in declaration order.
func (t *Table) Symbols() []string {
	syms := make([]string, len(t.order))
	copy(syms, t.order)
	return syms
}

// Len returns the number of members.
func (t *Table) Len() int { return len(t.order) }

// ObjectBacked reports whether any member value is an object rather than a scalar.
func (t *Table) ObjectBacked() bool { return t.objectBacked }

// ValueOf returns the raw storage value for a symbol.
func (t *Table) ValueOf(sym string) (interface{}, error) {
	raw, ok := t.symToVal[sym]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMember, sym)
	}
	return raw, nil
}

// SymbolOf returns the symbol whose raw storage value matches raw.
func (t *Table) SymbolOf(raw interface{}) (string, error) {
	sym, ok := t.valToSym[normalizeRaw(raw)]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownMember, raw)
	}
	return sym, nil
}

// ObjectOf returns the original object behind an object-backed member.
func (t *Table) ObjectOf(sym string) (interface{}, bool) {
	obj, ok := t.symToObj[sym]
	return obj, ok
}

// Contains reports whether raw is one of the table's storage values.
func (t *Table) Contains(raw interface{}) bool {
	_, ok := t.valToSym[normalizeRaw(raw)]
	return ok
}

// Coerce resolves a setter input to a member symbol. It accepts a symbol, a
// raw storage value, or an object satisfying the key capability; the symbol
// match wins over a raw-value match for string inputs.
func (t *Table) Coerce(input interface{}) (string, error) {
	if s, ok := input.(string); ok {
		if _, ok := t.symToVal[s]; ok {
			return s, nil
		}
	}
	raw := input
	if raw != nil && !isScalar(raw) {
		key, err := KeyOf(raw)
		if err == nil {
			raw = key
		}
	}
	if sym, ok := t.valToSym[normalizeRaw(raw)]; ok {
		return sym, nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownMember, input)
}
