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

// Package builtin declares the builtin function catalog: every builtin
// overload with the names of the native routines that execute it.
package builtin

import (
	"go.uber.org/zap"

	"github.com/matrixorigin/fncatalog/pkg/container/types"
	"github.com/matrixorigin/fncatalog/pkg/logutil"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

// Adder is the registration side of a function registry.
type Adder interface {
	Add(e *function.Entry) bool
}

// Seed registers every builtin overload with reg and returns how many were
// added. Overloads rejected as already present are skipped, so seeding the
// same registry twice adds nothing the second time.
func Seed(reg Adder) (added int) {
	defs := Definitions()
	skipped := 0
	for _, def := range defs {
		if reg.Add(function.NewEntry(function.MustNewSignature(def), function.BUILTIN)) {
			added++
		} else {
			skipped++
		}
	}
	logutil.Info("builtin functions seeded",
		zap.Int("total", len(defs)),
		zap.Int("added", added),
		zap.Int("skipped", skipped))
	return added
}

// Definitions returns the builtin overloads in registration order. The
// order matters: within one compare mode the first registered overload
// wins resolution.
func Definitions() []function.Definition {
	var defs []function.Definition
	defs = append(defs, aggregateDefinitions()...)
	defs = append(defs, analyticDefinitions()...)
	defs = append(defs, scalarDefinitions()...)
	return defs
}

func newDefinition(name string, args []types.Type, ret, intermediate types.Type, impl function.Impl) function.Definition {
	return function.Definition{
		Name:         function.NewFunctionName("", name),
		Args:         args,
		ReturnType:   ret,
		Intermediate: intermediate,
		Impl:         impl,
	}
}

func argList(args ...types.Type) []types.Type {
	return args
}
