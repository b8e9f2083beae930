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

// Member binds one symbolic name to the value it is declared with. The value
// is a plain scalar, an ordinal position, or an arbitrary object whose scalar
// storage key is derived at build time.
type Member struct {
	Sym   string
	Value interface{}
}

// M builds a single member pair.
func M(sym string, value interface{}) Member {
	return Member{Sym: sym, Value: value}
}

// Ordinal builds a member spec where each symbol's value is its zero-based
// position. Reordering the symbols renumbers every member; persisted rows
// keep the old numbers.
func Ordinal(syms ...string) []Member {
	members := make([]Member, len(syms))
	for i, sym := range syms {
		members[i] = Member{Sym: sym, Value: i}
	}
	return members
}

// Pairs builds an explicit-value member spec preserving declaration order.
func Pairs(members ...Member) []Member {
	return members
}

// Objects builds an object-backed member spec, deriving each member's symbol
// from the object itself via KeyOf.
func Objects(objects ...interface{}) ([]Member, error) {
	members := make([]Member, len(objects))
	for i, obj := range objects {
		key, err := KeyOf(obj)
		if err != nil {
			return nil, err
		}
		members[i] = Member{Sym: key, Value: obj}
	}
	return members, nil
}

// isScalar reports whether v is directly persistable without key derivation.
func isScalar(v interface{}) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, []byte:
		return true
	}
	return false
}

// normalizeRaw folds the numeric families so values declared as int compare
// equal to the int64 a database driver scans back.
func normalizeRaw(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return float64(n)
	case []byte:
		return string(n)
	}
	return v
}
