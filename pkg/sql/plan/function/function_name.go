// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package function

import "strings"

// FunctionName is a function identifier with an optional database
// qualifier. Both parts are folded to lower case on construction, so
// names compare case-insensitively. The qualifier is printed but does not
// take part in lookup.
type FunctionName struct {
	Db string
	Fn string
}

func NewFunctionName(db, fn string) FunctionName {
	return FunctionName{
		Db: strings.ToLower(strings.TrimSpace(db)),
		Fn: strings.ToLower(strings.TrimSpace(fn)),
	}
}

// ParseFunctionName splits "db.fn" at the last dot.
func ParseFunctionName(name string) FunctionName {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return NewFunctionName(name[:i], name[i+1:])
	}
	return NewFunctionName("", name)
}

// Key is the registry key of the name.
func (n FunctionName) Key() string {
	return strings.ToLower(n.Fn)
}

func (n FunctionName) String() string {
	if n.Db == "" {
		return n.Fn
	}
	return n.Db + "." + n.Fn
}
