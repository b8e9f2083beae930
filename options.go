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

import "github.com/tomoncle/coded/enum"

// Option adjusts a declaration's resolution policy.
type Option func(*enum.Policy)

// StorageField overrides the default storage column name (attribute plus the
// configured suffix). Two attributes on one model must not share a column
// unless aliasing is intended.
func StorageField(name string) Option {
	return func(p *enum.Policy) { p.StorageField = name }
}

// Permissive disables strict assignment: unrecognized setter input is stored
// unchanged instead of failing.
func Permissive() Option {
	return func(p *enum.Policy) { p.Strict = false }
}

// Prefix prefixes generated per-member method names with the attribute name.
func Prefix() Option {
	return func(p *enum.Policy) { p.Prefix = p.Attribute }
}

// PrefixName prefixes generated per-member method names with an explicit string.
func PrefixName(name string) Option {
	return func(p *enum.Policy) { p.Prefix = name }
}

// WithoutMemberMethods suppresses per-member predicates, mutators, and class
// accessors; getter, setter, and the collection accessor remain.
func WithoutMemberMethods() Option {
	return func(p *enum.Policy) { p.Suppression = enum.SuppressMemberMethods }
}

// WithoutClassAccessors suppresses only the per-member class accessors.
func WithoutClassAccessors() Option {
	return func(p *enum.Policy) { p.Suppression = enum.SuppressClassAccessors }
}

// RevealObjects makes single-member class accessors return the original
// object of object-backed members instead of the scalar storage key.
func RevealObjects() Option {
	return func(p *enum.Policy) { p.RevealObject = true }
}
