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
	"testing"

	"github.com/tomoncle/coded/labels"
)

type profile struct{}

func newDeclaration(t *testing.T, attribute string, members []Member) *Declaration {
	t.Helper()
	table, err := Build(members)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	return NewDeclaration(reflect.TypeOf(profile{}), table, NewPolicy(attribute, BuiltinDefaults()))
}

func TestCheck(t *testing.T) {
	decl := newDeclaration(t, "gender", Ordinal("male", "female"))

	// nil and the empty string represent "unset" and always pass.
	for _, raw := range []interface{}{nil, ""} {
		if !decl.Check(raw) {
			t.Errorf("Check(%v) = false, want true", raw)
		}
	}
	if !decl.Check(int64(1)) {
		t.Error("Check(1) = false for declared value")
	}
	if decl.Check(int64(7)) {
		t.Error("Check(7) = true for undeclared value")
	}
}

func TestOptionsDeclarationOrderAndFallback(t *testing.T) {
	decl := newDeclaration(t, "status", Pairs(M("pending_review", 1), M("done", 2)))
	src := labels.Static{
		"profile": {
			"statuses": {
				"done": "Finished",
			},
		},
	}
	opts := decl.Options(src)
	if len(opts) != 2 {
		t.Fatalf("Options len = %d", len(opts))
	}
	if opts[0].Symbol != "pending_review" || opts[1].Symbol != "done" {
		t.Errorf("options out of declaration order: %v", opts)
	}
	// Missing label entry falls back to the titleized symbol.
	if opts[0].Label != "Pending Review" {
		t.Errorf("fallback label = %q, want Pending Review", opts[0].Label)
	}
	if opts[1].Label != "Finished" {
		t.Errorf("label = %q, want Finished", opts[1].Label)
	}
	if opts[0].Value != int64(1) {
		t.Errorf("option value = %v, want 1", opts[0].Value)
	}
}

func TestOptionsNilSource(t *testing.T) {
	decl := newDeclaration(t, "status", Ordinal("draft"))
	opts := decl.Options(nil)
	if len(opts) != 1 || opts[0].Label != "Draft" {
		t.Fatalf("Options(nil) = %v", opts)
	}
}

func TestInFilter(t *testing.T) {
	decl := newDeclaration(t, "role", Pairs(M("admin", 1), M("member", 2)))
	filter, err := decl.InFilter("", "member", "admin")
	if err != nil {
		t.Fatalf("InFilter: %v", err)
	}
	if filter.Schema != "role_cd IN (?)" {
		t.Errorf("schema = %q", filter.Schema)
	}
	if len(filter.Args) != 1 {
		t.Fatalf("args = %v", filter.Args)
	}
	if _, err := decl.InFilter("", "nope"); err == nil {
		t.Fatal("expected error for unknown member")
	}
}
