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

package catalog

import (
	"runtime"

	"github.com/matrixorigin/fncatalog/pkg/config"
)

// Option sets up a Catalog.
type Option func(*Catalog)

// WithResolveWorkers sets the size of the pool batch resolution runs on.
func WithResolveWorkers(n int) Option {
	return func(c *Catalog) {
		c.options.workers = n
	}
}

// WithoutBuiltins starts the catalog empty.
func WithoutBuiltins() Option {
	return func(c *Catalog) {
		c.options.seedBuiltins = false
	}
}

// WithoutStats disables resolution statistics.
func WithoutStats() Option {
	return func(c *Catalog) {
		c.options.enableStats = false
	}
}

// WithObserver registers o for DDL notifications.
func WithObserver(o Observer) Option {
	return func(c *Catalog) {
		c.observers = append(c.observers, o)
	}
}

// WithParameters applies the [catalog] section of the configuration.
func WithParameters(p config.CatalogParameters) Option {
	return func(c *Catalog) {
		c.options.seedBuiltins = !p.DisableBuiltins
		c.options.enableStats = !p.DisableStats
		if p.ResolveWorkers > 0 {
			c.options.workers = p.ResolveWorkers
		}
	}
}

type options struct {
	workers      int
	seedBuiltins bool
	enableStats  bool
}

func defaultOptions() options {
	return options{
		workers:      runtime.NumCPU(),
		seedBuiltins: true,
		enableStats:  true,
	}
}
