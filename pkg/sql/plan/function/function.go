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
	"context"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/matrixorigin/fncatalog/pkg/common/moerr"
	"github.com/matrixorigin/fncatalog/pkg/container/types"
)

// Definition is the mutable form of an overload, frozen by NewSignature.
type Definition struct {
	Name FunctionName
	Args []types.Type
	// Variadic means the last of Args repeats across zero or more
	// trailing arguments.
	Variadic   bool
	ReturnType types.Type
	// Intermediate is the type of the serialized partial state of an
	// aggregate. Left as NULL it defaults to ReturnType.
	Intermediate types.Type
	// Hidden overloads are resolvable but not listed to users.
	Hidden bool
	Impl   Impl
}

// Signature is an immutable overload description.
type Signature struct {
	name         FunctionName
	args         []types.Type
	variadic     bool
	ret          types.Type
	intermediate types.Type
	userVisible  bool
	impl         Impl
}

// NewSignature validates def and freezes it.
func NewSignature(ctx context.Context, def Definition) (Signature, error) {
	if len(def.Name.Fn) == 0 {
		return Signature{}, moerr.NewInvalidInput(ctx, "function name is empty")
	}
	if def.Impl == nil {
		return Signature{}, moerr.NewInvalidInput(ctx, "function '%s' missing its implementation", def.Name)
	}
	if def.Variadic && len(def.Args) == 0 {
		return Signature{}, moerr.NewInvalidInput(ctx, "variadic function '%s' needs a repeated argument type", def.Name)
	}
	for _, arg := range def.Args {
		if !arg.Oid.Valid() {
			return Signature{}, moerr.NewInvalidInput(ctx, "function '%s' has argument of %s", def.Name, arg)
		}
	}
	if !def.ReturnType.Oid.Valid() {
		return Signature{}, moerr.NewInvalidInput(ctx, "function '%s' returns %s", def.Name, def.ReturnType)
	}
	intermediate := def.Intermediate
	if types.IsNull(intermediate) {
		intermediate = def.ReturnType
	}
	return Signature{
		name:         NewFunctionName(def.Name.Db, def.Name.Fn),
		args:         slices.Clone(def.Args),
		variadic:     def.Variadic,
		ret:          def.ReturnType,
		intermediate: intermediate,
		userVisible:  !def.Hidden,
		impl:         def.Impl,
	}, nil
}

// MustNewSignature is NewSignature for static builtin tables.
func MustNewSignature(def Definition) Signature {
	sig, err := NewSignature(moerr.Context(), def)
	if err != nil {
		panic(err)
	}
	return sig
}

func (s Signature) Name() FunctionName { return s.name }

// Args returns a copy of the formal parameter types.
func (s Signature) Args() []types.Type { return slices.Clone(s.args) }

func (s Signature) NumArgs() int { return len(s.args) }

func (s Signature) Arg(i int) types.Type { return s.args[i] }

func (s Signature) Variadic() bool { return s.variadic }

// VarArgType is the repeated type of a variadic signature.
func (s Signature) VarArgType() (types.Type, bool) {
	if !s.variadic {
		return types.Type{}, false
	}
	return s.args[len(s.args)-1], true
}

func (s Signature) ReturnType() types.Type { return s.ret }

func (s Signature) IntermediateType() types.Type { return s.intermediate }

func (s Signature) UserVisible() bool { return s.userVisible }

func (s Signature) Category() Category { return s.impl.Category() }

func (s Signature) Impl() Impl { return s.impl }

// Hook returns the opaque symbol bound to stage, "" when absent.
func (s Signature) Hook(stage Stage) string { return s.impl.Hook(stage) }

// Desc returns the call description with exactly this signature's shape.
func (s Signature) Desc() Desc {
	return Desc{Name: s.name, Args: slices.Clone(s.args), Variadic: s.variadic}
}

// String renders the signature text, e.g. "lag(INT, BIGINT, INT)" or
// "concat(VARCHAR...)".
func (s Signature) String() string {
	return signatureText(s.name, s.args, s.variadic)
}

func signatureText(name FunctionName, args []types.Type, variadic bool) string {
	var sb strings.Builder
	sb.WriteString(name.String())
	sb.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	if variadic {
		sb.WriteString("...")
	}
	sb.WriteByte(')')
	return sb.String()
}

// Desc describes a call site to the resolver: the function name, the
// actual argument types and whether the analyzer parsed a variadic call.
type Desc struct {
	Name     FunctionName
	Args     []types.Type
	Variadic bool
}

func NewDesc(name string, args ...types.Type) Desc {
	return Desc{Name: ParseFunctionName(name), Args: args}
}

func (d Desc) String() string {
	return signatureText(d.Name, d.Args, d.Variadic)
}

// Provenance tells builtins from user defined functions.
type Provenance int32

const (
	BUILTIN      Provenance = 0
	USER_DEFINED Provenance = 1
)

func (p Provenance) String() string {
	if p == BUILTIN {
		return "BUILTIN"
	}
	return "USER_DEFINED"
}

// Entry is a registered overload. Entries are never modified once a
// Registry has published them.
type Entry struct {
	sig        Signature
	provenance Provenance
	overloadID int64
}

func NewEntry(sig Signature, provenance Provenance) *Entry {
	return &Entry{sig: sig, provenance: provenance, overloadID: -1}
}

func (e *Entry) Signature() Signature { return e.sig }

func (e *Entry) Provenance() Provenance { return e.provenance }

func (e *Entry) IsBuiltin() bool { return e.provenance == BUILTIN }

// OverloadID is assigned by the Registry that holds the entry, -1 before.
func (e *Entry) OverloadID() int64 { return e.overloadID }

func (e *Entry) String() string { return e.sig.String() }

// EncodeOverloadID convert function-id and overload-sequence to be an overloadID
// the high 32-bit is function-id, the low 32-bit is overload-sequence
func EncodeOverloadID(fid int32, seq int32) (overloadID int64) {
	overloadID = int64(fid)
	overloadID = overloadID << 32
	overloadID |= int64(uint32(seq))
	return overloadID
}

// DecodeOverloadID convert overload id to be function-id and overload-sequence
func DecodeOverloadID(overloadID int64) (fid int32, seq int32) {
	fid = int32(overloadID >> 32)
	seq = int32(uint32(overloadID))
	return fid, seq
}
