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

import "errors"

// Declaration-time errors abort the declaration; the owning type must not be
// used afterwards. Runtime errors are surfaced to the immediate caller and
// are recoverable by retrying with a valid value.
var (
	// ErrDuplicateSymbol indicates the same symbol appears twice in a member spec.
	ErrDuplicateSymbol = errors.New("duplicate enum symbol")

	// ErrDuplicateValue indicates two symbols map to the same raw value.
	ErrDuplicateValue = errors.New("duplicate enum value")

	// ErrUnresolvableKey indicates an object-backed member cannot yield a scalar key.
	ErrUnresolvableKey = errors.New("unresolvable enum object key")

	// ErrInvalidMember indicates a strict setter rejected an unrecognized value.
	ErrInvalidMember = errors.New("invalid enum member")

	// ErrUnknownMember indicates a lookup or coercion input matched nothing.
	ErrUnknownMember = errors.New("unknown enum member")

	// ErrNotDeclared indicates a registry lookup for an attribute never declared.
	ErrNotDeclared = errors.New("enum attribute not declared")

	// ErrConflict indicates an (owner, attribute) pair was declared twice.
	ErrConflict = errors.New("enum attribute already declared")
)
