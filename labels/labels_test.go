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

package labels

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleize(t *testing.T) {
	cases := map[string]string{
		"pending_review": "Pending Review",
		"male":           "Male",
		"on_hold_again":  "On Hold Again",
	}
	for in, want := range cases {
		if got := Titleize(in); got != want {
			t.Errorf("Titleize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStaticLookup(t *testing.T) {
	src := Static{
		"User": {
			"genders": {
				"male": "Herr",
			},
		},
	}
	label, ok := src.Lookup("User", "genders", "male")
	if !ok || label != "Herr" {
		t.Errorf("Lookup = %q, %v", label, ok)
	}
	if _, ok := src.Lookup("User", "genders", "female"); ok {
		t.Error("missing entry reported as found")
	}
	if _, ok := src.Lookup("Other", "genders", "male"); ok {
		t.Error("missing owner reported as found")
	}
}

func TestYAMLSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.yaml")
	content := []byte("User:\n  genders:\n    male: Herr\n    female: Frau\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	src, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	label, ok := src.Lookup("User", "genders", "female")
	if !ok || label != "Frau" {
		t.Errorf("Lookup = %q, %v", label, ok)
	}
	if _, ok := src.Lookup("User", "genders", "other"); ok {
		t.Error("missing entry reported as found")
	}
}

func TestYAMLSourceMissingFile(t *testing.T) {
	if _, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
