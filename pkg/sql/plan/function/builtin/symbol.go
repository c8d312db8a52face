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

package builtin

import (
	"github.com/matrixorigin/fncatalog/pkg/container/types"
)

// native routine classes.
const (
	aggregateClass   = "AggregateFunctions"
	analyticClass    = "AnalyticFunctions"
	mathClass        = "MathFunctions"
	stringClass      = "StringFunctions"
	conditionalClass = "ConditionalFunctions"
	timestampClass   = "TimestampFunctions"
	hllClass         = "HllFunctions"
	likeClass        = "LikePredicate"
)

// valNames is the name of the native value type each kind is passed as.
var valNames = map[types.T]string{
	types.T_bool:     "BooleanVal",
	types.T_int8:     "TinyIntVal",
	types.T_int16:    "SmallIntVal",
	types.T_int32:    "IntVal",
	types.T_int64:    "BigIntVal",
	types.T_int128:   "LargeIntVal",
	types.T_float32:  "FloatVal",
	types.T_float64:  "DoubleVal",
	types.T_decimal:  "DecimalVal",
	types.T_date:     "DateTimeVal",
	types.T_datetime: "DateTimeVal",
	types.T_char:     "StringVal",
	types.T_varchar:  "StringVal",
	types.T_hll:      "StringVal",
}

func valName(t types.Type) string {
	if name, ok := valNames[t.Oid]; ok {
		return name
	}
	return "AnyVal"
}

// symbol names a native routine, e.g. AggregateFunctions::count_merge.
func symbol(class, fn string) string {
	return class + "::" + fn
}

// typedSymbol names a routine instantiated for the value types of ts, e.g.
// AggregateFunctions::min<IntVal>.
func typedSymbol(class, fn string, ts ...types.Type) string {
	s := symbol(class, fn) + "<"
	for i, t := range ts {
		if i > 0 {
			s += ", "
		}
		s += valName(t)
	}
	return s + ">"
}
