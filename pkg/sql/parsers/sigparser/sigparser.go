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

// Package sigparser parses the text form of a function call shape, the
// same text a signature prints as:
//
//	[db.]name(TYPE[, TYPE]*[...])
//
// where TYPE is a type name optionally followed by (length) or
// (precision, scale).
package sigparser

import (
	"context"
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matrixorigin/fncatalog/pkg/common/moerr"
	"github.com/matrixorigin/fncatalog/pkg/container/types"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

type callShape struct {
	Name     []string     `@Ident ( "." @Ident )?`
	Args     []*typeShape `"(" ( @@ ( "," @@ )* )?`
	Variadic bool         `@Ellipsis? ")"`
}

type typeShape struct {
	Pos    lexer.Position
	Name   string  `@Ident`
	Params []int32 `( "(" @Int ( "," @Int )? ")" )?`
}

var sigLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Punct", Pattern: `[().,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	callParser = participle.MustBuild[callShape](
		participle.Lexer(sigLexer),
		participle.Elide("Whitespace"),
	)
	typeParser = participle.MustBuild[typeShape](
		participle.Lexer(sigLexer),
		participle.Elide("Whitespace"),
	)
)

// ParseDesc parses text into a call description. A trailing "..." marks
// the description variadic, which only matters to identical matching.
func ParseDesc(ctx context.Context, text string) (function.Desc, error) {
	shape, err := callParser.ParseString("", text)
	if err != nil {
		return function.Desc{}, parseError(ctx, text, err)
	}
	if shape.Variadic && len(shape.Args) == 0 {
		return function.Desc{}, moerr.NewParseError(ctx, "'%s': '...' needs an argument type before it", text)
	}

	d := function.Desc{Variadic: shape.Variadic}
	if len(shape.Name) == 2 {
		d.Name = function.NewFunctionName(shape.Name[0], shape.Name[1])
	} else {
		d.Name = function.NewFunctionName("", shape.Name[0])
	}
	for _, a := range shape.Args {
		t, err := a.toType(ctx)
		if err != nil {
			return function.Desc{}, err
		}
		d.Args = append(d.Args, t)
	}
	return d, nil
}

// MustParseDesc is ParseDesc for tests and static tables.
func MustParseDesc(text string) function.Desc {
	d, err := ParseDesc(moerr.Context(), text)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseType parses a single type such as INT, varchar(20) or DECIMAL(10, 2).
func ParseType(ctx context.Context, text string) (types.Type, error) {
	shape, err := typeParser.ParseString("", text)
	if err != nil {
		return types.Type{}, parseError(ctx, text, err)
	}
	return shape.toType(ctx)
}

func (s *typeShape) toType(ctx context.Context) (types.Type, error) {
	oid, ok := types.TypeFromName(s.Name)
	if !ok {
		return types.Type{}, moerr.NewInvalidInput(ctx, "unknown type '%s' at column %d", s.Name, s.Pos.Column)
	}
	switch {
	case len(s.Params) == 0:
		return oid.ToType(), nil
	case oid == types.T_decimal:
		var scale int32
		if len(s.Params) == 2 {
			scale = s.Params[1]
		}
		if scale > s.Params[0] {
			return types.Type{}, moerr.NewInvalidInput(ctx, "decimal scale %d exceeds precision %d", scale, s.Params[0])
		}
		return types.NewDecimal(s.Params[0], scale), nil
	case oid.IsString() && len(s.Params) == 1:
		return types.Type{Oid: oid, Width: s.Params[0]}, nil
	}
	return types.Type{}, moerr.NewInvalidInput(ctx, "type %s takes no parameters %v", oid, s.Params)
}

func parseError(ctx context.Context, text string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return moerr.NewParseError(ctx, "'%s' at column %d: %s", strings.TrimSpace(text), perr.Position().Column, perr.Message())
	}
	return moerr.NewParseError(ctx, "'%s': %v", strings.TrimSpace(text), err)
}
