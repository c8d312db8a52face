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

import (
	"strings"

	"github.com/matrixorigin/fncatalog/pkg/container/types"
)

// CompareMode is how closely a signature must match a call. Modes are
// ordered from the tightest to the loosest, and resolution tries them in
// that order.
type CompareMode int8

const (
	// IsIdentical requires the same arity class and exactly equal types.
	IsIdentical CompareMode = iota
	// IsIndistinguishable additionally matches shapes that no argument
	// list could tell apart, such as two variadic overloads with the same
	// prefix and repeated type.
	IsIndistinguishable
	// IsSupertypeOf requires every formal to be strictly wider than its
	// actual. NULL actuals never match.
	IsSupertypeOf
	// IsNonstrictSupertypeOf requires every formal to be equal to or wider
	// than its actual. NULL actuals match anything.
	IsNonstrictSupertypeOf
)

// NumCompareModes is the number of compare modes.
const NumCompareModes = int(IsNonstrictSupertypeOf) + 1

// AllCompareModes lists the modes in resolution order.
var AllCompareModes = []CompareMode{
	IsIdentical, IsIndistinguishable, IsSupertypeOf, IsNonstrictSupertypeOf,
}

var compareModeNames = [...]string{
	IsIdentical:            "identical",
	IsIndistinguishable:    "indistinguishable",
	IsSupertypeOf:          "strict_supertype",
	IsNonstrictSupertypeOf: "nonstrict_supertype",
}

func (m CompareMode) String() string {
	if m >= 0 && int(m) < len(compareModeNames) {
		return compareModeNames[m]
	}
	return "unknown"
}

// ParseCompareMode accepts the mode names plus the short forms "strict"
// and "nonstrict", case-insensitively.
func ParseCompareMode(s string) (CompareMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "strict", "supertype":
		return IsSupertypeOf, true
	case "nonstrict":
		return IsNonstrictSupertypeOf, true
	}
	for i, name := range compareModeNames {
		if name == s {
			return CompareMode(i), true
		}
	}
	return IsIdentical, false
}

// Matches reports whether the signature satisfies the call at mode.
func (s Signature) Matches(d Desc, mode CompareMode) bool {
	if s.name.Key() != d.Name.Key() {
		return false
	}
	switch mode {
	case IsIdentical:
		return s.isIdentical(d)
	case IsIndistinguishable:
		return s.isIndistinguishable(d)
	case IsSupertypeOf:
		return s.isSupertypeOf(d, true)
	case IsNonstrictSupertypeOf:
		return s.isSupertypeOf(d, false)
	}
	return false
}

func (s Signature) isIdentical(d Desc) bool {
	if len(s.args) != len(d.Args) || s.variadic != d.Variadic {
		return false
	}
	for i := range s.args {
		if !s.args[i].Eq(d.Args[i]) {
			return false
		}
	}
	return true
}

func (s Signature) isIndistinguishable(d Desc) bool {
	minArgs := len(s.args)
	if len(d.Args) < minArgs {
		minArgs = len(d.Args)
	}
	// the shared prefix must be identical.
	for i := 0; i < minArgs; i++ {
		if !s.args[i].Eq(d.Args[i]) {
			return false
		}
	}
	if len(s.args) == len(d.Args) {
		return true
	}
	if !s.variadic || !d.Variadic || len(d.Args) == 0 {
		return false
	}
	// both variadic with different lengths: the repeated types must agree
	// and swallow every extra position of the longer list.
	varArg := s.args[len(s.args)-1]
	if !varArg.Eq(d.Args[len(d.Args)-1]) {
		return false
	}
	longer := s.args
	if len(d.Args) > len(longer) {
		longer = d.Args
	}
	for i := minArgs; i < len(longer); i++ {
		if !longer[i].Eq(varArg) {
			return false
		}
	}
	return true
}

// arityMatches is the precondition of both supertype modes.
func (s Signature) arityMatches(n int) bool {
	if s.variadic {
		return n >= len(s.args)-1
	}
	return n == len(s.args)
}

// formalAt is the formal type an actual at position i is checked against.
func (s Signature) formalAt(i int) types.Type {
	if i >= len(s.args) {
		return s.args[len(s.args)-1]
	}
	return s.args[i]
}

func (s Signature) isSupertypeOf(d Desc, strict bool) bool {
	if !s.arityMatches(len(d.Args)) {
		return false
	}
	for i, actual := range d.Args {
		w := types.WidensTo(actual, s.formalAt(i))
		if strict {
			if types.IsNull(actual) || w != types.Wider {
				return false
			}
		} else if !w.Accepts() {
			return false
		}
	}
	return true
}

// resolve returns the first entry of fs matching d at the tightest mode
// not looser than ceiling, and that mode. Within one mode the earliest
// registered entry wins.
func resolve(fs []*Entry, d Desc, ceiling CompareMode) (*Entry, CompareMode) {
	for _, mode := range AllCompareModes {
		if mode > ceiling {
			break
		}
		for _, e := range fs {
			if e.sig.Matches(d, mode) {
				return e, mode
			}
		}
	}
	return nil, ceiling
}
