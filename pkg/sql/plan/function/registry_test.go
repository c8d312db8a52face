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
	"fmt"
	"sync"
	"testing"

	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/fncatalog/pkg/container/types"
)

func mustAdd(t *testing.T, r *Registry, sig Signature) {
	require.True(t, r.Add(NewEntry(sig, BUILTIN)), sig.String())
}

func TestRegistryAddDuplicate(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("abs", false, types.Int, types.Int))
	require.False(t, r.Add(NewEntry(scalarSig("ABS", false, types.BigInt, types.Int), USER_DEFINED)))
	require.Len(t, r.LookupByName("abs"), 1)
	require.Equal(t, types.Int, r.LookupByName("abs")[0].Signature().ReturnType())
	require.Equal(t, 1, r.Len())
}

func TestRegistryAddVariadicDuplicate(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("concat_ws", true, types.Varchar, types.Varchar, types.Varchar))
	require.False(t, r.Add(NewEntry(scalarSig("concat_ws", true, types.Varchar, types.Varchar, types.Varchar), USER_DEFINED)))
	require.False(t, r.Add(NewEntry(scalarSig("concat_ws", true, types.Varchar, types.Varchar, types.Varchar, types.Varchar), USER_DEFINED)))
	require.True(t, r.Add(NewEntry(scalarSig("concat_ws", true, types.Varchar, types.Int, types.Varchar), USER_DEFINED)))
	require.Len(t, r.LookupByName("concat_ws"), 2)
}

func TestRegistryIdenticalRoundTrip(t *testing.T) {
	r := NewRegistry()
	sigs := []Signature{
		scalarSig("min", false, types.Int, types.Int),
		scalarSig("min", false, types.BigInt, types.BigInt),
		scalarSig("min", false, types.Varchar, types.Varchar),
		scalarSig("concat", true, types.Varchar, types.Varchar),
		scalarSig("lag", false, types.Int, types.Int, types.BigInt, types.Int),
		scalarSig("lag", false, types.Int, types.Int, types.BigInt),
		scalarSig("lag", false, types.Int, types.Int),
		scalarSig("now", false, types.Datetime),
		scalarSig("isnull", false, types.Boolean, types.Null),
	}
	for _, sig := range sigs {
		mustAdd(t, r, sig)
	}
	for _, sig := range sigs {
		e := r.Resolve(sig.Desc(), IsIdentical)
		require.NotNil(t, e, sig.String())
		require.Equal(t, sig.String(), e.Signature().String())
		require.True(t, e.Signature().Matches(sig.Desc(), IsIdentical))
	}
}

func TestRegistryResolveOrder(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("min", false, types.Int, types.Int))
	mustAdd(t, r, scalarSig("min", false, types.BigInt, types.BigInt))

	e := r.Resolve(NewDesc("min", types.TinyInt), IsNonstrictSupertypeOf)
	require.NotNil(t, e)
	require.Equal(t, "min(INT)", e.String())

	// the ceiling stops before any supertype tier.
	require.Nil(t, r.Resolve(NewDesc("min", types.TinyInt), IsIndistinguishable))

	e = r.Resolve(NewDesc("min", types.BigInt), IsNonstrictSupertypeOf)
	require.Equal(t, "min(BIGINT)", e.String())

	// INT matches min(INT) identically before min(BIGINT) strictly.
	e = r.Resolve(NewDesc("min", types.Int), IsNonstrictSupertypeOf)
	require.Equal(t, "min(INT)", e.String())

	e = r.Resolve(NewDesc("min", types.Int), IsSupertypeOf)
	require.Equal(t, "min(INT)", e.String())
}

func TestRegistryTierPrecedence(t *testing.T) {
	r := NewRegistry()
	// registered first, but only reachable at the nonstrict tier.
	mustAdd(t, r, scalarSig("f", false, types.Int, types.Int, types.Double))
	mustAdd(t, r, scalarSig("f", false, types.Int, types.BigInt, types.BigInt))

	e := r.Resolve(NewDesc("f", types.Int, types.Int), IsNonstrictSupertypeOf)
	require.Equal(t, "f(BIGINT, BIGINT)", e.String())

	e = r.Resolve(NewDesc("f", types.Int, types.Float), IsNonstrictSupertypeOf)
	require.Equal(t, "f(INT, DOUBLE)", e.String())

	_, mode := r.ResolveMode(NewDesc("f", types.Int, types.Int), IsNonstrictSupertypeOf)
	require.Equal(t, IsSupertypeOf, mode)
	_, mode = r.ResolveMode(NewDesc("f", types.Int, types.Double), IsNonstrictSupertypeOf)
	require.Equal(t, IsIdentical, mode)
}

func TestRegistryNullArguments(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("ifnull", false, types.Int, types.Int, types.Int))
	mustAdd(t, r, scalarSig("isnull", false, types.Boolean, types.Null))

	d := NewDesc("ifnull", types.Null, types.Int)
	for _, mode := range []CompareMode{IsIdentical, IsIndistinguishable, IsSupertypeOf} {
		require.Nil(t, r.Resolve(d, mode), mode.String())
	}
	require.NotNil(t, r.Resolve(d, IsNonstrictSupertypeOf))

	require.NotNil(t, r.Resolve(NewDesc("isnull", types.Null), IsIdentical))
}

func TestRegistryVariadic(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("concat", true, types.Varchar, types.Varchar))

	for _, n := range []int{0, 1, 5} {
		args := make([]types.Type, n)
		for i := range args {
			args[i] = types.Varchar
			if i%2 == 1 {
				args[i] = types.NewChar(10)
			}
		}
		e := r.Resolve(NewDesc("concat", args...), IsNonstrictSupertypeOf)
		require.NotNil(t, e, "%d args", n)
		require.Equal(t, "concat(VARCHAR...)", e.String())
	}
	require.Nil(t, r.Resolve(NewDesc("concat", types.Varchar, types.Int), IsNonstrictSupertypeOf))
}

func TestRegistryArityMismatch(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("lag", false, types.Int, types.Int, types.BigInt, types.Int))
	require.Nil(t, r.Resolve(NewDesc("lag", types.Int), IsNonstrictSupertypeOf))
	require.Nil(t, r.Resolve(NewDesc("lead", types.Int, types.BigInt, types.Int), IsNonstrictSupertypeOf))
	require.Nil(t, r.LookupByName("lead"))
}

func TestRegistryResolveIsIdempotent(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("sum", false, types.BigInt, types.BigInt))
	mustAdd(t, r, scalarSig("sum", false, types.Double, types.Double))
	d := NewDesc("sum", types.Float)
	first := r.Resolve(d, IsNonstrictSupertypeOf)
	second := r.Resolve(d, IsNonstrictSupertypeOf)
	require.NotNil(t, first)
	require.Same(t, first, second)
	require.Equal(t, "sum(DOUBLE)", first.String())
}

func TestRegistryLookupByExactText(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("upper", false, types.Varchar, types.Varchar))
	mustAdd(t, r, scalarSig("db1.lower", false, types.Varchar, types.Varchar))
	mustAdd(t, r, scalarSig("concat", true, types.Varchar, types.Varchar))

	require.Equal(t, "upper(VARCHAR)", r.LookupByExactText("upper(VARCHAR)").String())
	require.NotNil(t, r.LookupByExactText("db1.lower(VARCHAR)"))
	require.NotNil(t, r.LookupByExactText("concat(VARCHAR...)"))
	require.Nil(t, r.LookupByExactText("lower(VARCHAR)"))
	require.Nil(t, r.LookupByExactText("upper(VARCHAR) "))
}

func TestRegistryOverloadIDs(t *testing.T) {
	r := NewRegistry()
	in := NewEntry(scalarSig("abs", false, types.Int, types.Int), BUILTIN)
	require.True(t, r.Add(in))
	mustAdd(t, r, scalarSig("abs", false, types.Double, types.Double))
	mustAdd(t, r, scalarSig("floor", false, types.Double, types.Double))

	require.Equal(t, int64(-1), in.OverloadID())
	abs := r.LookupByName("abs")
	require.Equal(t, EncodeOverloadID(0, 0), abs[0].OverloadID())
	require.Equal(t, EncodeOverloadID(0, 1), abs[1].OverloadID())
	require.Equal(t, EncodeOverloadID(1, 0), r.LookupByName("floor")[0].OverloadID())
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, scalarSig("f", false, types.Int, types.Int))
	mustAdd(t, r, scalarSig("f", false, types.BigInt, types.BigInt))
	mustAdd(t, r, scalarSig("f", false, types.Double, types.Double))

	before := r.LookupByName("f")
	require.Nil(t, r.Drop(NewDesc("f", types.SmallInt)))
	require.Nil(t, r.Drop(NewDesc("g", types.Int)))

	dropped := r.Drop(NewDesc("f", types.BigInt))
	require.NotNil(t, dropped)
	require.Equal(t, "f(BIGINT)", dropped.String())
	require.Len(t, before, 3, "published slices never change")

	after := r.LookupByName("f")
	require.Len(t, after, 2)
	require.Equal(t, "f(INT)", after[0].String())
	require.Equal(t, "f(DOUBLE)", after[1].String())

	// sequence numbers are not reused.
	mustAdd(t, r, scalarSig("f", false, types.BigInt, types.BigInt))
	_, seq := DecodeOverloadID(r.LookupByName("f")[2].OverloadID())
	require.Equal(t, int32(3), seq)

	require.NotNil(t, r.Drop(NewDesc("f", types.Int)))
	require.NotNil(t, r.Drop(NewDesc("f", types.Double)))
	require.NotNil(t, r.Drop(NewDesc("f", types.BigInt)))
	require.Nil(t, r.LookupByName("f"))
	require.Empty(t, r.Names(""))
	require.Equal(t, 0, r.Len())
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"var_samp", "avg", "variance", "count", "var_pop", "Variance_Pop"} {
		mustAdd(t, r, scalarSig(name, false, types.Double, types.Double))
	}
	require.Equal(t, []string{"avg", "count", "var_pop", "var_samp", "variance", "variance_pop"}, r.Names(""))
	require.Equal(t, []string{"var_pop", "var_samp", "variance", "variance_pop"}, r.Names("VAR"))
	require.Equal(t, []string{"variance", "variance_pop"}, r.Names("variance"))
	require.Empty(t, r.Names("zzz"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	defer leaktest.AfterTest(t)()
	r := NewRegistry()
	mustAdd(t, r, scalarSig("f", false, types.Int, types.Int))

	const writers, readers, perWorker = 4, 16, 200
	var wg sync.WaitGroup
	added := make([]int, writers)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				// every writer tries the same names, only one may win each.
				name := fmt.Sprintf("udf_%d", i)
				if r.Add(NewEntry(scalarSig(name, false, types.Int, types.Int), USER_DEFINED)) {
					added[w]++
				}
			}
		}(w)
	}
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				e := r.Resolve(NewDesc("f", types.TinyInt), IsNonstrictSupertypeOf)
				if e == nil || e.String() != "f(INT)" {
					panic("resolution changed under concurrent writers")
				}
				for _, o := range r.LookupByName(fmt.Sprintf("udf_%d", j)) {
					if o.OverloadID() < 0 {
						panic("partially published entry")
					}
				}
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, n := range added {
		total += n
	}
	require.Equal(t, perWorker, total)
	require.Equal(t, perWorker+1, r.Len())
	for i := 0; i < perWorker; i++ {
		require.Len(t, r.LookupByName(fmt.Sprintf("udf_%d", i)), 1)
	}
}
