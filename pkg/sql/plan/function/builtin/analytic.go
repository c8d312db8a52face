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

// FirstValueRewrite is the hidden overload the planner substitutes for
// first_value over windows it has to rewrite.
const FirstValueRewrite = "first_value_rewrite"

func analyticDefinitions() []function.Definition {
	rankFinalize := symbol(analyticClass, "rank_finalize")
	defs := []function.Definition{
		newDefinition("rank", nil, types.BigInt, types.Varchar, function.Analytic{
			Init:     symbol(analyticClass, "rank_init"),
			Update:   symbol(analyticClass, "rank_update"),
			GetValue: symbol(analyticClass, "rank_get_value"),
			Finalize: rankFinalize,
		}),
		newDefinition("dense_rank", nil, types.BigInt, types.Varchar, function.Analytic{
			Init:     symbol(analyticClass, "rank_init"),
			Update:   symbol(analyticClass, "dense_rank_update"),
			GetValue: symbol(analyticClass, "dense_rank_get_value"),
			Finalize: rankFinalize,
		}),
		newDefinition("row_number", nil, types.BigInt, types.BigInt, function.Analytic{
			Init:   initZero,
			Update: countStarUpdate,
		}),
	}

	for _, t := range types.AllBuiltinTypes {
		initFn := initNull
		if types.IsStringType(t) {
			initFn = initNullString
		}
		var getValue, finalize string
		if t.Oid == types.T_varchar {
			getValue, finalize = stringGetValue, stringSerializeOrFinalize
		}

		defs = append(defs,
			newDefinition("first_value", argList(t), t, t, function.Analytic{
				Init:     initFn,
				Update:   typedSymbol(analyticClass, "first_val_update", t),
				GetValue: getValue,
				Finalize: finalize,
			}),
			hidden(newDefinition(FirstValueRewrite, argList(t, types.BigInt), t, t, function.Analytic{
				Init:     initFn,
				Update:   typedSymbol(analyticClass, "first_val_rewrite_update", t),
				GetValue: getValue,
				Finalize: finalize,
			})),
			newDefinition("last_value", argList(t), t, t, function.Analytic{
				Init:     initFn,
				Update:   typedSymbol(analyticClass, "last_val_update", t),
				Remove:   typedSymbol(analyticClass, "last_val_remove", t),
				GetValue: getValue,
				Finalize: finalize,
			}),
		)

		// the short forms of lag and lead are rewritten by the planner into
		// the full form, so they carry no routines of their own.
		for _, name := range []string{"lag", "lead"} {
			defs = append(defs,
				newDefinition(name, argList(t, types.BigInt, t), t, t, function.Analytic{
					Init:   typedSymbol(analyticClass, "offset_fn_init", t),
					Update: typedSymbol(analyticClass, "offset_fn_update", t),
				}),
				newDefinition(name, argList(t), t, t, function.Analytic{}),
				newDefinition(name, argList(t, types.BigInt), t, t, function.Analytic{}),
			)
		}
	}
	return defs
}

func hidden(def function.Definition) function.Definition {
	def.Hidden = true
	return def
}
