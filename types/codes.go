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
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// NullCode is a nullable coded column for enum storage fields. Unlike a plain
// scalar column it distinguishes "unset" from a zero value, which matters for
// ordinal enums where 0 is a valid member value. It satisfies the storage
// field contract used by the enum accessors.
type NullCode struct {
	Code  interface{}
	Valid bool
}

// Code wraps a raw value into a set NullCode.
func Code(v interface{}) NullCode {
	return NullCode{Code: v, Valid: v != nil}
}

// RawValue returns the stored code, or nil when unset.
func (n NullCode) RawValue() interface{} {
	if !n.Valid {
		return nil
	}
	return n.Code
}

// SetRawValue stores a code; nil clears the column.
func (n *NullCode) SetRawValue(v interface{}) {
	if v == nil {
		n.Code, n.Valid = nil, false
		return
	}
	n.Code, n.Valid = v, true
}

// Value implements driver.Valuer for NullCode.
func (n NullCode) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	switch v := n.Code.(type) {
	case int64, float64, bool, string, []byte:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float32:
		return float64(v), nil
	}
	return nil, fmt.Errorf("unsupported code type %T", n.Code)
}

// Scan implements sql.Scanner for NullCode.
func (n *NullCode) Scan(value interface{}) error {
	if value == nil {
		n.Code, n.Valid = nil, false
		return nil
	}
	switch v := value.(type) {
	case int64, float64, bool, string:
		n.Code, n.Valid = v, true
	case []byte:
		n.Code, n.Valid = string(v), true
	default:
		return errors.New("unsupported scan type for NullCode")
	}
	return nil
}

// MarshalJSON renders the code itself, or null when unset.
func (n NullCode) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Code)
}

// UnmarshalJSON accepts null or any scalar code.
func (n *NullCode) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.SetRawValue(v)
	return nil
}
