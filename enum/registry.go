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
	"reflect"
	"sync"
)

var defaultRegistry = NewRegistry()

type registryKey struct {
	owner reflect.Type
	attr  string
}

// Registry maps (owning model type, attribute name) to its declaration.
// Declarations are registered during type initialization, a single-threaded
// phase; the lock only guards against concurrent reads during that window.
type Registry struct {
	mu      sync.RWMutex
	entries map[registryKey]*Declaration
	order   map[reflect.Type][]string
}

// NewRegistry returns an empty registry. Most callers use the package-level
// default via DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[registryKey]*Declaration),
		order:   make(map[reflect.Type][]string),
	}
}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register stores a declaration under its (owner, attribute) pair.
func (r *Registry) Register(decl *Declaration) error {
	key := registryKey{owner: decl.owner, attr: decl.policy.Attribute}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %s.%s", ErrConflict, decl.OwnerName(), key.attr)
	}
	r.entries[key] = decl
	r.order[key.owner] = append(r.order[key.owner], key.attr)
	return nil
}

// Lookup returns the declaration for (owner, attribute).
func (r *Registry) Lookup(owner reflect.Type, attribute string) (*Declaration, error) {
	owner = baseType(owner)
	r.mu.RLock()
	defer r.mu.RUnlock()
	decl, ok := r.entries[registryKey{owner: owner, attr: attribute}]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotDeclared, owner.Name(), attribute)
	}
	return decl, nil
}

// Declared returns the attribute names declared on owner in registration order.
func (r *Registry) Declared(owner reflect.Type) []string {
	owner = baseType(owner)
	r.mu.RLock()
	defer r.mu.RUnlock()
	attrs := make([]string, len(r.order[owner]))
	copy(attrs, r.order[owner])
	return attrs
}

// baseType strips pointer indirections so *Model and Model share entries.
func baseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
