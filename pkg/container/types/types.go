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

import (
	"fmt"
	"strings"
)

// T is the kind of a data type.
type T uint8

const (
	// T_null is the type of a bare NULL literal.
	T_null T = iota
	T_bool

	// integer family, narrow to wide
	T_int8
	T_int16
	T_int32
	T_int64
	T_int128

	// floating family
	T_float32
	T_float64

	T_decimal

	// temporal family
	T_date
	T_datetime

	// string family
	T_char
	T_varchar

	// T_hll holds a HyperLogLog sketch for approximate distinct counting.
	T_hll

	tEnd
)

// Family groups kinds whose members widen into each other.
type Family uint8

const (
	FamilyNull Family = iota
	FamilyBool
	FamilyInteger
	FamilyFloat
	FamilyDecimal
	FamilyTemporal
	FamilyString
	FamilyHll

	familyInvalid
)

var familyNames = [...]string{
	FamilyNull:     "null",
	FamilyBool:     "bool",
	FamilyInteger:  "integer",
	FamilyFloat:    "float",
	FamilyDecimal:  "decimal",
	FamilyTemporal: "temporal",
	FamilyString:   "string",
	FamilyHll:      "hll",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

type kindInfo struct {
	name   string
	family Family
	// rank orders kinds inside a family; a higher rank is wider.
	rank int
}

var kinds = [tEnd]kindInfo{
	T_null:     {"NULL", FamilyNull, 0},
	T_bool:     {"BOOLEAN", FamilyBool, 0},
	T_int8:     {"TINYINT", FamilyInteger, 1},
	T_int16:    {"SMALLINT", FamilyInteger, 2},
	T_int32:    {"INT", FamilyInteger, 3},
	T_int64:    {"BIGINT", FamilyInteger, 4},
	T_int128:   {"LARGEINT", FamilyInteger, 5},
	T_float32:  {"FLOAT", FamilyFloat, 1},
	T_float64:  {"DOUBLE", FamilyFloat, 2},
	T_decimal:  {"DECIMAL", FamilyDecimal, 0},
	T_date:     {"DATE", FamilyTemporal, 1},
	T_datetime: {"DATETIME", FamilyTemporal, 2},
	T_char:     {"CHAR", FamilyString, 1},
	T_varchar:  {"VARCHAR", FamilyString, 2},
	T_hll:      {"HLL", FamilyHll, 0},
}

// name aliases accepted by TypeFromName in addition to the canonical names.
var aliases = map[string]T{
	"BOOL":      T_bool,
	"INTEGER":   T_int32,
	"REAL":      T_float64,
	"NUMERIC":   T_decimal,
	"STRING":    T_varchar,
	"TEXT":      T_varchar,
	"TIMESTAMP": T_datetime,
}

var nameToT = func() map[string]T {
	m := make(map[string]T, len(kinds)+len(aliases))
	for i := range kinds {
		m[kinds[i].name] = T(i)
	}
	for k, v := range aliases {
		m[k] = v
	}
	return m
}()

func (t T) String() string {
	if t < tEnd {
		return kinds[t].name
	}
	return fmt.Sprintf("unknown_type(%d)", uint8(t))
}

func (t T) Valid() bool {
	return t < tEnd
}

func (t T) Family() Family {
	if !t.Valid() {
		return familyInvalid
	}
	return kinds[t].family
}

func (t T) IsInteger() bool {
	return t.Family() == FamilyInteger
}

func (t T) IsFloat() bool {
	return t.Family() == FamilyFloat
}

// IsNumeric reports whether t is an integer, floating or decimal kind.
func (t T) IsNumeric() bool {
	switch t.Family() {
	case FamilyInteger, FamilyFloat, FamilyDecimal:
		return true
	}
	return false
}

func (t T) IsTemporal() bool {
	return t.Family() == FamilyTemporal
}

func (t T) IsString() bool {
	return t.Family() == FamilyString
}

// ToType returns the unparameterised Type of kind t.
func (t T) ToType() Type {
	return Type{Oid: t}
}

// TypeFromName maps a case-insensitive SQL type name to its kind.
func TypeFromName(name string) (T, bool) {
	t, ok := nameToT[strings.ToUpper(strings.TrimSpace(name))]
	return t, ok
}

// Type is an immutable data type. Width is the precision of a DECIMAL or
// the length of a CHAR/VARCHAR, Scale is the scale of a DECIMAL. Both are
// zero when unspecified and never take part in overload selection.
type Type struct {
	Oid   T
	Width int32
	Scale int32
}

var (
	Null     = T_null.ToType()
	Boolean  = T_bool.ToType()
	TinyInt  = T_int8.ToType()
	SmallInt = T_int16.ToType()
	Int      = T_int32.ToType()
	BigInt   = T_int64.ToType()
	LargeInt = T_int128.ToType()
	Float    = T_float32.ToType()
	Double   = T_float64.ToType()
	Decimal  = T_decimal.ToType()
	Date     = T_date.ToType()
	Datetime = T_datetime.ToType()
	Char     = T_char.ToType()
	Varchar  = T_varchar.ToType()
	Hll      = T_hll.ToType()
)

// AllBuiltinTypes lists the kinds builtins are registered for, in
// registration order. NULL and CHAR are only reachable by widening.
var AllBuiltinTypes = []Type{
	Boolean, TinyInt, SmallInt, Int, BigInt, LargeInt,
	Float, Double, Decimal, Date, Datetime, Varchar, Hll,
}

// NumericTypes lists the numeric kinds in registration order.
var NumericTypes = []Type{
	TinyInt, SmallInt, Int, BigInt, LargeInt, Float, Double, Decimal,
}

func NewDecimal(precision, scale int32) Type {
	return Type{Oid: T_decimal, Width: precision, Scale: scale}
}

func NewChar(length int32) Type {
	return Type{Oid: T_char, Width: length}
}

func NewVarchar(length int32) Type {
	return Type{Oid: T_varchar, Width: length}
}

// Eq reports whether two types are the same kind. Parameters are ignored.
func (t Type) Eq(o Type) bool {
	return t.Oid == o.Oid
}

func (t Type) String() string {
	switch {
	case t.Oid == T_decimal && t.Width > 0:
		return fmt.Sprintf("%s(%d,%d)", t.Oid, t.Width, t.Scale)
	case t.Oid.IsString() && t.Width > 0:
		return fmt.Sprintf("%s(%d)", t.Oid, t.Width)
	default:
		return t.Oid.String()
	}
}
