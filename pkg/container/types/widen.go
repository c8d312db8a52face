// Copyright 2021 Matrix Origin
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

package types

// Widening is the result of asking whether a value of one type can be
// passed where another type is expected.
type Widening int8

const (
	// NotWidenable means no implicit promotion exists.
	NotWidenable Widening = iota
	// Identical means both types are the same kind.
	Identical
	// Wider means the target is strictly wider than the source.
	Wider
)

func (w Widening) String() string {
	switch w {
	case Identical:
		return "identical"
	case Wider:
		return "wider"
	default:
		return "not-widenable"
	}
}

// Accepts reports whether an actual argument may be passed, identical or
// promoted.
func (w Widening) Accepts() bool {
	return w != NotWidenable
}

// implicit promotions, one step each. wideningTable holds their closure.
var promotions = [][2]T{
	{T_int8, T_int16},
	{T_int16, T_int32},
	{T_int32, T_int64},
	{T_int64, T_int128},

	{T_int8, T_float32},
	{T_int16, T_float32},
	{T_int32, T_float32},
	{T_int64, T_float32},
	{T_int128, T_float32},

	{T_int8, T_decimal},
	{T_int16, T_decimal},
	{T_int32, T_decimal},
	{T_int64, T_decimal},
	{T_int128, T_decimal},

	{T_float32, T_float64},
	{T_decimal, T_float64},

	{T_date, T_datetime},
	{T_char, T_varchar},
}

var wideningTable = buildWideningTable()

func buildWideningTable() (tbl [tEnd][tEnd]bool) {
	for _, p := range promotions {
		tbl[p[0]][p[1]] = true
	}
	for t := T(0); t < tEnd; t++ {
		if t != T_null {
			tbl[T_null][t] = true
		}
	}
	for k := T(0); k < tEnd; k++ {
		for i := T(0); i < tEnd; i++ {
			if !tbl[i][k] {
				continue
			}
			for j := T(0); j < tEnd; j++ {
				if tbl[k][j] {
					tbl[i][j] = true
				}
			}
		}
	}
	return
}

// WidensTo reports how an actual argument of type from relates to a formal
// parameter of type to. DECIMAL precision and string lengths are ignored.
func WidensTo(from, to Type) Widening {
	return from.Oid.WidensTo(to.Oid)
}

func (t T) WidensTo(to T) Widening {
	if t == to {
		return Identical
	}
	if t < tEnd && to < tEnd && wideningTable[t][to] {
		return Wider
	}
	return NotWidenable
}

func IsNull(t Type) bool {
	return t.Oid == T_null
}

// IsStringType reports whether t belongs to the CHAR/VARCHAR family.
func IsStringType(t Type) bool {
	return t.Oid.IsString()
}
