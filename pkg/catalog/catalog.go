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

// Package catalog is the function catalog a server owns: the registry of
// builtin and user-defined overloads together with the DDL entry points,
// resolution statistics and batch resolution.
package catalog

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/fncatalog/pkg/common/moerr"
	"github.com/matrixorigin/fncatalog/pkg/logutil"
	"github.com/matrixorigin/fncatalog/pkg/logutil/logutil2"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function/builtin"
)

var newPool = ants.NewPool

type Catalog struct {
	options   options
	registry  *function.Registry
	stats     *stats
	pool      *ants.Pool
	observers []Observer
	closed    atomic.Bool
}

// New creates a catalog, seeded with the builtins unless WithoutBuiltins
// is given.
func New(ctx context.Context, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		options:  defaultOptions(),
		registry: function.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.options.workers <= 0 {
		return nil, moerr.NewBadConfig(ctx, "resolve workers must be positive, got %d", c.options.workers)
	}

	pool, err := newPool(c.options.workers, ants.WithPanicHandler(func(v interface{}) {
		logutil.Error("resolve worker panicked", zap.Error(moerr.ConvertPanicError(context.Background(), v)))
	}))
	if err != nil {
		return nil, moerr.ConvertGoError(ctx, err)
	}
	c.pool = pool

	if c.options.enableStats {
		c.stats = newStats()
	}
	if c.options.seedBuiltins {
		builtin.Seed(c.registry)
	}
	logutil2.Info(ctx, "function catalog started",
		zap.Int("functions", c.registry.Len()),
		zap.Int("resolve-workers", c.options.workers),
		zap.Bool("stats", c.stats != nil))
	return c, nil
}

// Close releases the worker pool. Lookups keep working on a closed
// catalog; DDL and batch resolution fail.
func (c *Catalog) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.pool.Release()
	}
}

// Registry exposes the underlying registry for read access.
func (c *Catalog) Registry() *function.Registry {
	return c.registry
}

// Resolve finds the overload of d.Name best matching d, trying compare
// modes up to ceiling. It returns nil when none matches.
func (c *Catalog) Resolve(ctx context.Context, d function.Desc, ceiling function.CompareMode) *function.Entry {
	e, mode := c.registry.ResolveMode(d, ceiling)
	if c.stats != nil {
		c.stats.record(d, e, mode)
	}
	if e == nil {
		logutil2.Debug(ctx, "function not resolved",
			zap.String("call", d.String()),
			zap.Stringer("ceiling", ceiling))
	}
	return e
}

// ResolveOrError is Resolve for the analyzer, reporting a missing overload
// as an invalid argument.
func (c *Catalog) ResolveOrError(ctx context.Context, d function.Desc, ceiling function.CompareMode) (*function.Entry, error) {
	if e := c.Resolve(ctx, d, ceiling); e != nil {
		return e, nil
	}
	return nil, moerr.NewInvalidArg(ctx, "function", d.String())
}

// CreateFunction registers a user-defined overload. An overload that no
// call could tell apart from sig must not exist yet, unless ifNotExists is
// set, in which case nothing happens.
func (c *Catalog) CreateFunction(ctx context.Context, sig function.Signature, ifNotExists bool) error {
	if c.closed.Load() {
		return moerr.NewInvalidState(ctx, "function catalog is closed")
	}
	if !c.registry.Add(function.NewEntry(sig, function.USER_DEFINED)) {
		if ifNotExists {
			logutil2.Debug(ctx, "function exists, skip creating", zap.String("signature", sig.String()))
			return nil
		}
		return moerr.NewFunctionAlreadyExists(ctx, sig.String())
	}

	e := c.registry.Resolve(sig.Desc(), function.IsIdentical)
	if e == nil {
		// dropped concurrently.
		return nil
	}
	logutil2.Info(ctx, "function created",
		zap.String("signature", e.String()),
		zap.Int64("overload-id", e.OverloadID()))
	for _, o := range c.observers {
		o.OnFunctionAdded(ctx, e)
	}
	return nil
}

// DropFunction removes the user-defined overload identical to d. A missing
// overload is an error unless ifExists is set. Builtins cannot be dropped.
func (c *Catalog) DropFunction(ctx context.Context, d function.Desc, ifExists bool) error {
	if c.closed.Load() {
		return moerr.NewInvalidState(ctx, "function catalog is closed")
	}
	e := c.registry.Resolve(d, function.IsIdentical)
	if e != nil && e.IsBuiltin() {
		return moerr.NewNotSupported(ctx, "drop builtin function %s", e.String())
	}
	if e != nil {
		e = c.registry.Drop(d)
	}
	if e == nil {
		if ifExists {
			return nil
		}
		return moerr.NewDropNonExistsFunction(ctx, d.String())
	}

	logutil2.Info(ctx, "function dropped",
		zap.String("signature", e.String()),
		zap.Int64("overload-id", e.OverloadID()))
	for _, o := range c.observers {
		o.OnFunctionDropped(ctx, e)
	}
	return nil
}

// ShowFunctions lists the user-visible overloads of the functions whose
// name starts with prefix, by name and then in registration order.
func (c *Catalog) ShowFunctions(prefix string) []string {
	var out []string
	for _, name := range c.registry.Names(strings.TrimSpace(prefix)) {
		for _, e := range c.registry.LookupByName(name) {
			if e.Signature().UserVisible() {
				out = append(out, e.String())
			}
		}
	}
	return out
}

// Stats returns the resolution statistics, zero when they are disabled.
func (c *Catalog) Stats() StatsSnapshot {
	var snap StatsSnapshot
	if c.stats != nil {
		snap = c.stats.snapshot()
	}
	snap.Functions = c.registry.Len()
	return snap
}
