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

package config

import (
	"context"
	"runtime"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/matrixorigin/fncatalog/pkg/common/moerr"
	"github.com/matrixorigin/fncatalog/pkg/logutil"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

var (
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultDefaultCeiling = function.IsNonstrictSupertypeOf.String()
)

// Parameters of the function catalog service.
type Parameters struct {
	Log logutil.LogConfig `toml:"log"`

	Catalog CatalogParameters `toml:"catalog"`
}

// CatalogParameters of the [catalog] section.
type CatalogParameters struct {
	// DisableBuiltins starts the catalog without the builtin functions.
	DisableBuiltins bool `toml:"disable-builtins"`

	// DisableStats turns off resolution statistics.
	DisableStats bool `toml:"disable-stats"`

	// ResolveWorkers is the size of the batch resolution pool. default: number of cpus
	ResolveWorkers int `toml:"resolve-workers"`

	// DefaultCeiling is the loosest compare mode used when a caller does not
	// ask for one. default: nonstrict_supertype
	DefaultCeiling string `toml:"default-ceiling"`
}

// SetDefaultValues fills every unset parameter.
func (p *Parameters) SetDefaultValues() {
	if p.Log.Level == "" {
		p.Log.Level = defaultLogLevel
	}
	if p.Log.Format == "" {
		p.Log.Format = defaultLogFormat
	}
	if p.Catalog.ResolveWorkers == 0 {
		p.Catalog.ResolveWorkers = runtime.NumCPU()
	}
	if p.Catalog.DefaultCeiling == "" {
		p.Catalog.DefaultCeiling = defaultDefaultCeiling
	}
}

// Validate checks the parameters after defaults are set.
func (p *Parameters) Validate(ctx context.Context) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(p.Log.Level)); err != nil {
		return moerr.NewBadConfig(ctx, "log level '%s'", p.Log.Level)
	}
	switch p.Log.Format {
	case "console", "json":
	default:
		return moerr.NewBadConfig(ctx, "log format '%s'", p.Log.Format)
	}
	if p.Catalog.ResolveWorkers <= 0 {
		return moerr.NewBadConfig(ctx, "catalog.resolve-workers must be positive, got %d", p.Catalog.ResolveWorkers)
	}
	if _, ok := function.ParseCompareMode(p.Catalog.DefaultCeiling); !ok {
		return moerr.NewBadConfig(ctx, "catalog.default-ceiling '%s'", p.Catalog.DefaultCeiling)
	}
	return nil
}

// Ceiling returns the configured default compare mode.
func (cp CatalogParameters) Ceiling() function.CompareMode {
	mode, ok := function.ParseCompareMode(cp.DefaultCeiling)
	if !ok {
		return function.IsNonstrictSupertypeOf
	}
	return mode
}

// ParseFromFile loads, defaults and validates the parameters in file.
func ParseFromFile(ctx context.Context, file string) (*Parameters, error) {
	p := &Parameters{}
	if _, err := toml.DecodeFile(file, p); err != nil {
		return nil, moerr.NewBadConfig(ctx, "decode %s: %v", file, err)
	}
	p.SetDefaultValues()
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Default returns the parameters used when no configuration file is given.
func Default() *Parameters {
	p := &Parameters{}
	p.SetDefaultValues()
	return p
}
