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

package types

import (
	"encoding/json"
	"testing"
)

func TestNullCodeScan(t *testing.T) {
	var n NullCode
	if err := n.Scan(int64(3)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !n.Valid || n.Code != int64(3) {
		t.Errorf("after Scan(3): %+v", n)
	}
	if err := n.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if n.Valid {
		t.Error("Scan(nil) left code set")
	}
	if err := n.Scan([]byte("male")); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if n.Code != "male" {
		t.Errorf("Scan([]byte) = %v", n.Code)
	}
}

func TestNullCodeValue(t *testing.T) {
	v, err := Code(2).Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != int64(2) {
		t.Errorf("Value = %v, want 2", v)
	}
	v, err = NullCode{}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != nil {
		t.Errorf("unset Value = %v, want nil", v)
	}
}

func TestNullCodeStorageField(t *testing.T) {
	var n NullCode
	if n.RawValue() != nil {
		t.Error("unset RawValue != nil")
	}
	n.SetRawValue(int64(1))
	if n.RawValue() != int64(1) {
		t.Errorf("RawValue = %v", n.RawValue())
	}
	n.SetRawValue(nil)
	if n.Valid {
		t.Error("SetRawValue(nil) left Valid")
	}
}

func TestNullCodeJSON(t *testing.T) {
	data, err := json.Marshal(Code("admin"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"admin"` {
		t.Errorf("Marshal = %s", data)
	}
	data, err = json.Marshal(NullCode{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal unset = %s", data)
	}
	var n NullCode
	if err := json.Unmarshal([]byte("null"), &n); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if n.Valid {
		t.Error("Unmarshal(null) set Valid")
	}
}
