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

package database

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
connection:
  type: sqlite
  dbname: "file::memory:?cache=shared"
  enable_query_log: true
labels_file: configs/labels.yaml
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Connection.Type != "sqlite" {
		t.Errorf("type = %q", cfg.Connection.Type)
	}
	if !cfg.Connection.EnableQueryLog {
		t.Error("enable_query_log not parsed")
	}
	if cfg.LabelsFile != "configs/labels.yaml" {
		t.Errorf("labels_file = %q", cfg.LabelsFile)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, _, err := open(&ConnectionConfig{Type: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}
