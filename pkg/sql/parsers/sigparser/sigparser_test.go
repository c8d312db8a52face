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

package sigparser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/fncatalog/pkg/common/moerr"
	"github.com/matrixorigin/fncatalog/pkg/container/types"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function/builtin"
)

func TestParseDesc(t *testing.T) {
	ctx := context.TODO()
	tests := []struct {
		text string
		want function.Desc
	}{
		{"now()", function.NewDesc("now")},
		{"MIN(int)", function.NewDesc("min", types.Int)},
		{"  lag ( INT , BIGINT, int )  ", function.NewDesc("lag", types.Int, types.BigInt, types.Int)},
		{"concat(VARCHAR...)", function.Desc{Name: function.NewFunctionName("", "concat"), Args: []types.Type{types.Varchar}, Variadic: true}},
		{"concat_ws(varchar, string ...)", function.Desc{Name: function.NewFunctionName("", "concat_ws"), Args: []types.Type{types.Varchar, types.Varchar}, Variadic: true}},
		{"db1.f(NULL, bool)", function.Desc{Name: function.NewFunctionName("db1", "f"), Args: []types.Type{types.Null, types.Boolean}}},
		{"f(VARCHAR(20), CHAR(3), DECIMAL(10,2), decimal(8))", function.NewDesc("f",
			types.NewVarchar(20), types.NewChar(3), types.NewDecimal(10, 2), types.NewDecimal(8, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDesc(ctx, tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDescErrors(t *testing.T) {
	ctx := context.TODO()
	tests := []struct {
		text string
		code uint16
	}{
		{"", moerr.ErrParseError},
		{"min", moerr.ErrParseError},
		{"min(INT", moerr.ErrParseError},
		{"min(INT,)", moerr.ErrParseError},
		{"min(INT) extra", moerr.ErrParseError},
		{"a.b.c(INT)", moerr.ErrParseError},
		{"f(...)", moerr.ErrParseError},
		{"f(INT...,INT)", moerr.ErrParseError},
		{"f(WIDGET)", moerr.ErrInvalidInput},
		{"f(INT(3))", moerr.ErrInvalidInput},
		{"f(VARCHAR(1, 2))", moerr.ErrInvalidInput},
		{"f(DECIMAL(2, 5))", moerr.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseDesc(ctx, tt.text)
			require.Error(t, err)
			require.True(t, moerr.IsMoErrCode(err, tt.code), err.Error())
		})
	}
}

func TestParseType(t *testing.T) {
	ctx := context.TODO()
	typ, err := ParseType(ctx, " integer ")
	require.NoError(t, err)
	require.Equal(t, types.Int, typ)

	typ, err = ParseType(ctx, "Decimal(27, 9)")
	require.NoError(t, err)
	require.Equal(t, "DECIMAL(27,9)", typ.String())

	_, err = ParseType(ctx, "VARCHAR(")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrParseError))
	_, err = ParseType(ctx, "blob")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestMustParseDesc(t *testing.T) {
	require.Equal(t, "upper(VARCHAR)", MustParseDesc("upper(varchar)").String())
	require.Panics(t, func() { MustParseDesc("upper(") })
}

// every builtin prints a text that parses back to its own shape.
func TestBuiltinSignatureText(t *testing.T) {
	for _, def := range builtin.Definitions() {
		sig := function.MustNewSignature(def)
		d, err := ParseDesc(context.TODO(), sig.String())
		require.NoError(t, err, sig.String())
		require.Equal(t, sig.Desc(), d)
		require.True(t, sig.Matches(d, function.IsIdentical))
	}
}
