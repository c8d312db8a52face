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
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

var (
	initNull                  = symbol(aggregateClass, "init_null")
	initNullString            = symbol(aggregateClass, "init_null_string")
	initZero                  = typedSymbol(aggregateClass, "init_zero", types.BigInt)
	stringSerializeOrFinalize = symbol(aggregateClass, "string_val_serialize_or_finalize")
	stringGetValue            = symbol(aggregateClass, "string_val_get_value")
	countMerge                = symbol(aggregateClass, "count_merge")
	countStarUpdate           = symbol(aggregateClass, "count_star_update")
)

// stddevTypes are the kinds the variance family is registered for.
var stddevTypes = []types.Type{
	types.TinyInt, types.SmallInt, types.Int, types.BigInt, types.Float, types.Double,
}

// stddevFinalizers maps every member of the variance family to its
// finalize routine, in registration order.
var stddevFinalizers = []struct {
	name     string
	finalize string
}{
	{"stddev", "knuth_stddev_finalize"},
	{"stddev_samp", "knuth_stddev_finalize"},
	{"stddev_pop", "knuth_stddev_pop_finalize"},
	{"variance", "knuth_var_finalize"},
	{"variance_samp", "knuth_var_finalize"},
	{"var_samp", "knuth_var_finalize"},
	{"variance_pop", "knuth_var_pop_finalize"},
	{"var_pop", "knuth_var_pop_finalize"},
}

var sumTypes = []types.Type{types.BigInt, types.Double, types.Decimal, types.LargeInt}

func aggregateDefinitions() []function.Definition {
	defs := []function.Definition{
		newDefinition("count", nil, types.BigInt, types.BigInt, function.Aggregate{
			Init:                  initZero,
			Update:                countStarUpdate,
			Merge:                 countMerge,
			Remove:                symbol(aggregateClass, "count_star_remove"),
			AnalyticCapable:       true,
			ReturnsNonNullOnEmpty: true,
		}),
	}

	for _, t := range types.AllBuiltinTypes {
		for _, name := range []string{"count", "count_distinct"} {
			defs = append(defs, newDefinition(name, argList(t), types.BigInt, types.BigInt, function.Aggregate{
				Init:                  initZero,
				Update:                symbol(aggregateClass, "count_update"),
				Merge:                 countMerge,
				Remove:                symbol(aggregateClass, "count_remove"),
				IgnoresDistinct:       name == "count_distinct",
				AnalyticCapable:       true,
				ReturnsNonNullOnEmpty: true,
			}))
		}

		if t.Oid != types.T_hll {
			defs = append(defs, minMax("min", t), minMax("max", t))
			defs = append(defs, newDefinition("ndv", argList(t), types.Varchar, types.Varchar, function.Aggregate{
				Init:                  symbol(aggregateClass, "hll_init"),
				Update:                typedSymbol(aggregateClass, "hll_update", t),
				Merge:                 symbol(aggregateClass, "hll_merge"),
				Finalize:              symbol(aggregateClass, "hll_finalize"),
				IgnoresDistinct:       true,
				ReturnsNonNullOnEmpty: true,
			}))
		}
	}

	for _, t := range []types.Type{types.Varchar, types.Hll} {
		defs = append(defs, newDefinition("hll_union_agg", argList(t), types.Varchar, types.Varchar, function.Aggregate{
			Init:                  symbol(aggregateClass, "hll_union_agg_init"),
			Update:                symbol(aggregateClass, "hll_union_agg_update"),
			Merge:                 symbol(aggregateClass, "hll_union_agg_merge"),
			Finalize:              symbol(aggregateClass, "hll_union_agg_finalize"),
			IgnoresDistinct:       true,
			ReturnsNonNullOnEmpty: true,
		}))
	}

	for _, t := range stddevTypes {
		for _, f := range stddevFinalizers {
			defs = append(defs, newDefinition(f.name, argList(t), types.Double, types.Varchar, function.Aggregate{
				Init:      symbol(aggregateClass, "knuth_var_init"),
				Update:    typedSymbol(aggregateClass, "knuth_var_update", t),
				Merge:     symbol(aggregateClass, "knuth_var_merge"),
				Serialize: stringSerializeOrFinalize,
				Finalize:  symbol(aggregateClass, f.finalize),
			}))
		}
	}

	for _, name := range []string{"sum", "sum_distinct"} {
		for _, t := range sumTypes {
			defs = append(defs, newDefinition(name, argList(t), t, t, function.Aggregate{
				Init:            initNull,
				Update:          typedSymbol(aggregateClass, "sum", t, t),
				Merge:           typedSymbol(aggregateClass, "sum", t, t),
				Remove:          typedSymbol(aggregateClass, "sum_remove", t, t),
				AnalyticCapable: true,
			}))
		}
	}

	avgs := []struct {
		arg, ret types.Type
	}{
		{types.BigInt, types.Double},
		{types.Double, types.Double},
		{types.Decimal, types.Decimal},
		{types.Date, types.Date},
		{types.Datetime, types.Datetime},
	}
	for _, a := range avgs {
		defs = append(defs, newDefinition("avg", argList(a.arg), a.ret, types.Varchar, function.Aggregate{
			Init:            symbol(aggregateClass, "avg_init"),
			Update:          typedSymbol(aggregateClass, "avg_update", a.arg),
			Merge:           symbol(aggregateClass, "avg_merge"),
			Serialize:       stringSerializeOrFinalize,
			GetValue:        typedSymbol(aggregateClass, "avg_get_value", a.ret),
			Finalize:        typedSymbol(aggregateClass, "avg_finalize", a.ret),
			Remove:          typedSymbol(aggregateClass, "avg_remove", a.arg),
			AnalyticCapable: true,
		}))
	}

	for _, args := range [][]types.Type{argList(types.Varchar), argList(types.Varchar, types.Varchar)} {
		defs = append(defs, newDefinition("group_concat", args, types.Varchar, types.Varchar, function.Aggregate{
			Init:      initNullString,
			Update:    symbol(aggregateClass, "string_concat_update"),
			Merge:     symbol(aggregateClass, "string_concat_merge"),
			Serialize: stringSerializeOrFinalize,
			Finalize:  stringSerializeOrFinalize,
		}))
	}
	return defs
}

// minMax declares min or max over t. String kinds keep their state in a
// heap value and need the string serialize and get-value routines.
func minMax(name string, t types.Type) function.Definition {
	impl := function.Aggregate{
		Init:            initNull,
		Update:          typedSymbol(aggregateClass, name, t),
		Merge:           typedSymbol(aggregateClass, name, t),
		IgnoresDistinct: true,
		AnalyticCapable: true,
	}
	if types.IsStringType(t) {
		impl.Init = initNullString
		impl.Serialize = stringSerializeOrFinalize
		impl.GetValue = stringGetValue
		impl.Finalize = stringSerializeOrFinalize
	}
	return newDefinition(name, argList(t), t, t, impl)
}
