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

// Suppression selects which generated accessor tiers are skipped.
type Suppression int

const (
	// SuppressNone generates the full accessor surface.
	SuppressNone Suppression = iota
	// SuppressMemberMethods skips per-member predicates, mutators, and
	// class accessors. Getter, setter, and the collection accessor remain.
	// A prefix has no observable effect under this level.
	SuppressMemberMethods
	// SuppressClassAccessors skips only the per-member class accessors.
	SuppressClassAccessors
)

// Defaults holds the process-wide declaration defaults. It is set once during
// startup and read-only afterwards.
type Defaults struct {
	Strict          bool
	StorageSuffix   string
	PrefixSeparator string
}

// BuiltinDefaults returns the stock defaults: strict assignment, "_cd" storage
// suffix, "_" prefix separator.
func BuiltinDefaults() Defaults {
	return Defaults{Strict: true, StorageSuffix: "_cd", PrefixSeparator: "_"}
}

// Policy is the per-declaration configuration governing how table results are
// exposed and how invalid input is handled. Immutable after declaration.
type Policy struct {
	Attribute    string
	StorageField string
	Strict       bool
	Prefix       string
	Separator    string
	Suppression  Suppression
	RevealObject bool
}

// NewPolicy returns a policy for attribute with defaults applied.
func NewPolicy(attribute string, d Defaults) Policy {
	return Policy{
		Attribute:    attribute,
		StorageField: attribute + d.StorageSuffix,
		Strict:       d.Strict,
		Separator:    d.PrefixSeparator,
	}
}

// MethodName returns the generated name for a per-member method, applying the
// configured prefix.
func (p Policy) MethodName(sym string) string {
	if p.Prefix == "" {
		return sym
	}
	return p.Prefix + p.Separator + sym
}

// Check reports whether raw is acceptable for the storage field: nil and the
// empty string represent "unset" and are always permitted, anything else must
// be a declared storage value. Check is the passive validation channel used
// by external per-field validation loops and is independent of Strict, which
// governs assignment only.
func (p Policy) Check(t *Table, raw interface{}) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok && s == "" {
		return true
	}
	return t.Contains(raw)
}
