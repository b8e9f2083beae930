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

// Package labels resolves human-readable labels for enum members. The core
// consumes it through the Source interface; the YAML source is a file-backed
// implementation keyed by owner type, pluralized attribute, and member symbol.
package labels

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option is one entry of a select-option list: the resolved label plus the
// member's symbol and storage value.
type Option struct {
	Label  string
	Symbol string
	Value  interface{}
}

// Source looks up a localized label. The second return is false when no entry
// exists, in which case callers fall back to Titleize.
type Source interface {
	Lookup(owner, attribute, symbol string) (string, bool)
}

// Static is an in-memory Source: owner -> attribute -> symbol -> label.
type Static map[string]map[string]map[string]string

func (s Static) Lookup(owner, attribute, symbol string) (string, bool) {
	label, ok := s[owner][attribute][symbol]
	return label, ok && label != ""
}

// YAMLSource loads labels from a YAML file with the same three-level layout
// as Static.
type YAMLSource struct {
	path    string
	entries Static
}

// LoadYAML reads and parses the label file at path.
func LoadYAML(path string) (*YAMLSource, error) {
	src := &YAMLSource{path: path}
	if err := src.Reload(); err != nil {
		return nil, err
	}
	return src, nil
}

// Reload re-reads the label file, replacing all entries.
func (s *YAMLSource) Reload() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("label file does not exist: %s", s.path)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read label file: %w", err)
	}
	var entries Static
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse label file: %w", err)
	}
	s.entries = entries
	return nil
}

func (s *YAMLSource) Lookup(owner, attribute, symbol string) (string, bool) {
	return s.entries.Lookup(owner, attribute, symbol)
}

// Titleize is the fallback label format: underscores become spaces and each
// word is capitalized, so "pending_review" yields "Pending Review".
func Titleize(symbol string) string {
	words := strings.FieldsFunc(symbol, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
