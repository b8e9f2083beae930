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

// Package coded declares enum attributes backed by scalar storage columns on
// Bun models. A declaration builds the member table once, registers it under
// the owning model type, and derives the accessor surface; instances resolve
// symbols through the registered declaration rather than generated methods.
package coded

import (
	"fmt"
	"reflect"

	"github.com/uptrace/bun"

	"github.com/tomoncle/coded/enum"
	"github.com/tomoncle/coded/utils"
)

var log = utils.NewLogger("CODED")

// Declare registers an enum attribute on model type T. The spec is either an
// ordered symbol list ([]string, ordinal values), explicit pairs
// ([]enum.Member via enum.Pairs/enum.M), or object-backed members
// (enum.Objects). Declaration runs during package or type initialization and
// must complete before instances of T are used; it is not safe to call
// concurrently for the same (owner, attribute) pair.
func Declare[T any](attribute string, spec interface{}, opts ...Option) (*enum.Declaration, error) {
	members, err := normalizeSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", attribute, err)
	}
	policy := enum.NewPolicy(attribute, currentDefaults)
	for _, opt := range opts {
		opt(&policy)
	}
	table, err := enum.Build(members)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", attribute, err)
	}
	decl := enum.NewDeclaration(ownerType[T](), table, policy)
	if err := enum.DefaultRegistry().Register(decl); err != nil {
		return nil, err
	}
	log.Debugf("declared enum %s.%s with %d members", decl.OwnerName(), attribute, table.Len())
	return decl, nil
}

// MustDeclare is Declare, panicking on error. Declaration failures are
// programmer errors and must prevent the owning type from becoming usable.
func MustDeclare[T any](attribute string, spec interface{}, opts ...Option) *enum.Declaration {
	decl, err := Declare[T](attribute, spec, opts...)
	if err != nil {
		panic(err)
	}
	return decl
}

// Lookup returns the declaration registered for T's attribute.
func Lookup[T any](attribute string) (*enum.Declaration, error) {
	return enum.DefaultRegistry().Lookup(ownerType[T](), attribute)
}

// LookupFor is the non-generic lookup used when only a model value is at hand.
func LookupFor(model interface{}, attribute string) (*enum.Declaration, error) {
	return enum.DefaultRegistry().Lookup(reflect.TypeOf(model), attribute)
}

// Where restricts a select query to rows whose enum column holds one of the
// given members' storage values.
func Where(q *bun.SelectQuery, decl *enum.Declaration, syms ...string) (*bun.SelectQuery, error) {
	filter, err := decl.InFilter("", syms...)
	if err != nil {
		return nil, err
	}
	return q.Where(filter.Schema, filter.Args...), nil
}

func ownerType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func normalizeSpec(spec interface{}) ([]enum.Member, error) {
	switch s := spec.(type) {
	case []string:
		return enum.Ordinal(s...), nil
	case []enum.Member:
		return s, nil
	case map[string]interface{}:
		return nil, fmt.Errorf("map specs lose declaration order; use enum.Pairs")
	}
	return nil, fmt.Errorf("unsupported member spec type %T", spec)
}
