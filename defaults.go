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

package coded

import "github.com/tomoncle/coded/enum"

var currentDefaults = enum.BuiltinDefaults()

// SetDefaults replaces the process-wide declaration defaults. Call it once
// during startup, before any Declare; the defaults are read-only afterwards.
func SetDefaults(d enum.Defaults) {
	if d.StorageSuffix == "" {
		d.StorageSuffix = "_cd"
	}
	if d.PrefixSeparator == "" {
		d.PrefixSeparator = "_"
	}
	currentDefaults = d
}

// CurrentDefaults returns the defaults applied to new declarations.
func CurrentDefaults() enum.Defaults {
	return currentDefaults
}
