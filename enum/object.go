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
	"strings"
)

// Keyer is the dedicated capability for object-backed members: the object
// states its own scalar storage key.
type Keyer interface {
	EnumKey() string
}

// Named is the fallback capability; the symbolized form of Name is used as
// the storage key.
type Named interface {
	Name() string
}

// KeyOf derives the scalar storage key for an object-backed member value.
// Resolution order: Keyer, then Named. Anything else fails ErrUnresolvableKey.
func KeyOf(obj interface{}) (string, error) {
	switch o := obj.(type) {
	case Keyer:
		return o.EnumKey(), nil
	case Named:
		return symbolize(o.Name()), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnresolvableKey, obj)
}

func symbolize(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	return strings.ReplaceAll(s, " ", "_")
}
