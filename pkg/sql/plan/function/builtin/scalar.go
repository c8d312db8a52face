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

func scalar(name string, ret types.Type, args []types.Type, sym string) function.Definition {
	return newDefinition(name, args, ret, types.Null, function.Scalar{Symbol: sym})
}

func variadicScalar(name string, ret types.Type, args []types.Type, sym string) function.Definition {
	def := scalar(name, ret, args, sym)
	def.Variadic = true
	return def
}

func scalarDefinitions() []function.Definition {
	var defs []function.Definition

	// math
	for _, t := range []types.Type{types.BigInt, types.LargeInt, types.Double, types.Decimal} {
		defs = append(defs, scalar("abs", t, argList(t), typedSymbol(mathClass, "abs", t)))
	}
	for _, name := range []string{"ceil", "floor"} {
		defs = append(defs,
			scalar(name, types.BigInt, argList(types.Double), typedSymbol(mathClass, name, types.Double)),
			scalar(name, types.Decimal, argList(types.Decimal), typedSymbol(mathClass, name, types.Decimal)),
		)
	}

	// strings
	defs = append(defs,
		variadicScalar("concat", types.Varchar, argList(types.Varchar), symbol(stringClass, "concat")),
		variadicScalar("concat_ws", types.Varchar, argList(types.Varchar, types.Varchar), symbol(stringClass, "concat_ws")),
		scalar("length", types.Int, argList(types.Varchar), symbol(stringClass, "length")),
		scalar("lower", types.Varchar, argList(types.Varchar), symbol(stringClass, "lower")),
		scalar("upper", types.Varchar, argList(types.Varchar), symbol(stringClass, "upper")),
		scalar("substr", types.Varchar, argList(types.Varchar, types.Int), symbol(stringClass, "substring")),
		scalar("substr", types.Varchar, argList(types.Varchar, types.Int, types.Int), symbol(stringClass, "substring")),
	)
	for _, name := range []string{"like", "regexp"} {
		defs = append(defs, newDefinition(name, argList(types.Varchar, types.Varchar), types.Boolean, types.Null, function.Scalar{
			Symbol:  symbol(likeClass, name),
			Prepare: symbol(likeClass, name+"_prepare"),
			Close:   symbol(likeClass, name+"_close"),
		}))
	}

	// conditionals
	for _, t := range types.AllBuiltinTypes {
		defs = append(defs,
			variadicScalar("coalesce", t, argList(t), typedSymbol(conditionalClass, "coalesce", t)),
			scalar("ifnull", t, argList(t, t), typedSymbol(conditionalClass, "ifnull", t)),
		)
	}

	// time
	defs = append(defs,
		scalar("year", types.Int, argList(types.Datetime), symbol(timestampClass, "year")),
		scalar("datediff", types.Int, argList(types.Datetime, types.Datetime), symbol(timestampClass, "date_diff")),
		scalar("now", types.Datetime, nil, symbol(timestampClass, "now")),
	)

	// hll
	defs = append(defs,
		scalar("hll_hash", types.Varchar, argList(types.Varchar), symbol(hllClass, "hll_hash")),
		scalar("hll_cardinality", types.BigInt, argList(types.Hll), symbol(hllClass, "hll_cardinality")),
		scalar("hll_cardinality", types.BigInt, argList(types.Varchar), symbol(hllClass, "hll_cardinality")),
	)
	return defs
}
