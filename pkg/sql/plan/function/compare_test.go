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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/fncatalog/pkg/container/types"
)

func TestCompare(t *testing.T) {
	fixed := scalarSig("f", false, types.Int, types.Int, types.BigInt)
	varchars := scalarSig("f", true, types.Varchar, types.Varchar)
	prefixed := scalarSig("f", true, types.Varchar, types.Int, types.Varchar)

	variadicDesc := func(args ...types.Type) Desc {
		d := NewDesc("f", args...)
		d.Variadic = true
		return d
	}

	// want is indexed by IsIdentical, IsIndistinguishable, IsSupertypeOf,
	// IsNonstrictSupertypeOf.
	tests := []struct {
		name string
		sig  Signature
		desc Desc
		want [4]bool
	}{
		{
			name: "exact fixed",
			sig:  fixed,
			desc: NewDesc("F", types.Int, types.BigInt),
			want: [4]bool{true, true, false, true},
		},
		{
			name: "other name",
			sig:  fixed,
			desc: NewDesc("g", types.Int, types.BigInt),
			want: [4]bool{false, false, false, false},
		},
		{
			name: "strictly narrower actuals",
			sig:  fixed,
			desc: NewDesc("f", types.TinyInt, types.Int),
			want: [4]bool{false, false, true, true},
		},
		{
			name: "one position equal",
			sig:  fixed,
			desc: NewDesc("f", types.TinyInt, types.BigInt),
			want: [4]bool{false, false, false, true},
		},
		{
			name: "wider actual",
			sig:  fixed,
			desc: NewDesc("f", types.BigInt, types.BigInt),
			want: [4]bool{false, false, false, false},
		},
		{
			name: "null actual",
			sig:  fixed,
			desc: NewDesc("f", types.Null, types.Int),
			want: [4]bool{false, false, false, true},
		},
		{
			name: "arity mismatch",
			sig:  fixed,
			desc: NewDesc("f", types.Int),
			want: [4]bool{false, false, false, false},
		},
		{
			name: "variadic zero args",
			sig:  varchars,
			desc: NewDesc("f"),
			want: [4]bool{false, false, true, true},
		},
		{
			name: "variadic one arg",
			sig:  varchars,
			desc: NewDesc("f", types.Varchar),
			want: [4]bool{false, true, false, true},
		},
		{
			name: "variadic one arg, variadic call",
			sig:  varchars,
			desc: variadicDesc(types.Varchar),
			want: [4]bool{true, true, false, true},
		},
		{
			name: "variadic five char args",
			sig:  varchars,
			desc: NewDesc("f", types.Char, types.Char, types.Char, types.Char, types.Char),
			want: [4]bool{false, false, true, true},
		},
		{
			name: "variadic mixed args",
			sig:  varchars,
			desc: NewDesc("f", types.Char, types.Varchar, types.Null),
			want: [4]bool{false, false, false, true},
		},
		{
			name: "variadic wrong trailing type",
			sig:  varchars,
			desc: NewDesc("f", types.Varchar, types.Int),
			want: [4]bool{false, false, false, false},
		},
		{
			name: "variadic prefix only",
			sig:  prefixed,
			desc: NewDesc("f", types.SmallInt),
			want: [4]bool{false, false, true, true},
		},
		{
			name: "variadic prefix missing",
			sig:  prefixed,
			desc: NewDesc("f"),
			want: [4]bool{false, false, false, false},
		},
		{
			name: "variadic longer variadic call",
			sig:  prefixed,
			desc: variadicDesc(types.Int, types.Varchar, types.Varchar, types.Varchar),
			want: [4]bool{false, true, false, true},
		},
		{
			name: "variadic longer call, other repeated type",
			sig:  prefixed,
			desc: variadicDesc(types.Int, types.Varchar, types.Char),
			want: [4]bool{false, false, false, true},
		},
		{
			name: "null formal",
			sig:  scalarSig("f", false, types.Int, types.Null),
			desc: NewDesc("f", types.Null),
			want: [4]bool{true, true, false, true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, mode := range AllCompareModes {
				require.Equal(t, tt.want[i], tt.sig.Matches(tt.desc, mode), mode.String())
			}
		})
	}
}

func TestIndistinguishableSignatures(t *testing.T) {
	tests := []struct {
		name string
		a, b Signature
		want bool
	}{
		{
			name: "same fixed",
			a:    scalarSig("f", false, types.Int, types.Int),
			b:    scalarSig("f", false, types.BigInt, types.Int),
			want: true,
		},
		{
			name: "different fixed",
			a:    scalarSig("min", false, types.Int, types.Int),
			b:    scalarSig("min", false, types.BigInt, types.BigInt),
			want: false,
		},
		{
			name: "same variadic",
			a:    scalarSig("f", true, types.Varchar, types.Int, types.Varchar),
			b:    scalarSig("f", true, types.Int, types.Int, types.Varchar),
			want: true,
		},
		{
			name: "variadic swallowing a fixed position",
			a:    scalarSig("f", true, types.Varchar, types.Varchar),
			b:    scalarSig("f", true, types.Varchar, types.Varchar, types.Varchar, types.Varchar),
			want: true,
		},
		{
			name: "variadic, other repeated type",
			a:    scalarSig("f", true, types.Varchar, types.Varchar),
			b:    scalarSig("f", true, types.Varchar, types.Char),
			want: false,
		},
		{
			name: "fixed equals variadic length",
			a:    scalarSig("f", true, types.Varchar, types.Varchar),
			b:    scalarSig("f", false, types.Varchar, types.Varchar),
			want: true,
		},
		{
			name: "fixed longer than variadic",
			a:    scalarSig("f", true, types.Varchar, types.Varchar),
			b:    scalarSig("f", false, types.Varchar, types.Varchar, types.Varchar),
			want: false,
		},
		{
			name: "zero args",
			a:    scalarSig("now", false, types.Datetime),
			b:    scalarSig("now", false, types.Date),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Matches(tt.b.Desc(), IsIndistinguishable))
			require.Equal(t, tt.want, tt.b.Matches(tt.a.Desc(), IsIndistinguishable))
		})
	}
}

func TestTiersNest(t *testing.T) {
	sigs := []Signature{
		scalarSig("f", false, types.Int, types.Int),
		scalarSig("f", false, types.Int, types.BigInt, types.Varchar),
		scalarSig("f", true, types.Int, types.Varchar),
		scalarSig("f", true, types.Int, types.Double, types.Date),
	}
	descs := []Desc{
		NewDesc("f"),
		NewDesc("f", types.Int),
		NewDesc("f", types.Null),
		NewDesc("f", types.TinyInt, types.Char),
		NewDesc("f", types.Float, types.Date, types.Datetime),
		NewDesc("f", types.Decimal, types.Null, types.Date),
	}
	for _, sig := range sigs {
		for _, d := range descs {
			if sig.Matches(d, IsIdentical) {
				require.True(t, sig.Matches(d, IsIndistinguishable), "%s %s", sig, d)
			}
			if sig.Matches(d, IsSupertypeOf) {
				require.True(t, sig.Matches(d, IsNonstrictSupertypeOf), "%s %s", sig, d)
			}
			if sig.Matches(d, IsIdentical) && !d.Variadic {
				require.True(t, sig.Matches(d, IsNonstrictSupertypeOf), "%s %s", sig, d)
			}
		}
	}
}

func TestParseCompareMode(t *testing.T) {
	for _, mode := range AllCompareModes {
		got, ok := ParseCompareMode(mode.String())
		require.True(t, ok)
		require.Equal(t, mode, got)
	}
	got, ok := ParseCompareMode(" Strict ")
	require.True(t, ok)
	require.Equal(t, IsSupertypeOf, got)
	got, ok = ParseCompareMode("NONSTRICT")
	require.True(t, ok)
	require.Equal(t, IsNonstrictSupertypeOf, got)
	_, ok = ParseCompareMode("loose")
	require.False(t, ok)
	require.Equal(t, "unknown", CompareMode(9).String())
}
