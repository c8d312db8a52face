// Copyright 2022 Matrix Origin
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

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/fncatalog/pkg/catalog"
	"github.com/matrixorigin/fncatalog/pkg/common/moerr"
	"github.com/matrixorigin/fncatalog/pkg/config"
	"github.com/matrixorigin/fncatalog/pkg/sql/parsers/sigparser"
	"github.com/matrixorigin/fncatalog/pkg/sql/plan/function"
)

type application struct {
	ctx     context.Context
	cfg     *config.Parameters
	catalog *catalog.Catalog
	out     io.Writer
}

func (app *application) ceiling(flag string) (function.CompareMode, error) {
	if flag == "" {
		return app.cfg.Catalog.Ceiling(), nil
	}
	mode, ok := function.ParseCompareMode(flag)
	if !ok {
		return 0, moerr.NewInvalidInput(app.ctx, "unknown compare mode '%s'", flag)
	}
	return mode, nil
}

func (app *application) resolve(calls []string, flag string) ([]function.Desc, []*function.Entry, error) {
	mode, err := app.ceiling(flag)
	if err != nil {
		return nil, nil, err
	}
	descs := make([]function.Desc, 0, len(calls))
	for _, call := range calls {
		d, err := sigparser.ParseDesc(app.ctx, call)
		if err != nil {
			return nil, nil, err
		}
		descs = append(descs, d)
	}
	entries, err := app.catalog.ResolveBatch(app.ctx, descs, mode)
	if err != nil {
		return nil, nil, err
	}
	return descs, entries, nil
}

type resolveCmd struct {
	Ceiling string   `name:"ceiling" help:"Loosest compare mode: identical, indistinguishable, strict or nonstrict."`
	Calls   []string `arg:"" required:"" help:"Calls to resolve."`
}

func (c *resolveCmd) Run(app *application) error {
	descs, entries, err := app.resolve(c.Calls, c.Ceiling)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e == nil {
			fmt.Fprintf(app.out, "%s\tnot found\n", descs[i])
			continue
		}
		fmt.Fprintf(app.out, "%s\t%s\t%s\n", descs[i], e, e.Signature().ReturnType())
	}
	return nil
}

type listCmd struct {
	Prefix string `arg:"" optional:"" help:"Function name prefix."`
}

func (c *listCmd) Run(app *application) error {
	for _, s := range app.catalog.ShowFunctions(c.Prefix) {
		fmt.Fprintln(app.out, s)
	}
	return nil
}

type showCmd struct {
	Signature string `arg:"" help:"Signature text, e.g. 'lag(INT, BIGINT, INT)'."`
}

func (c *showCmd) Run(app *application) error {
	d, err := sigparser.ParseDesc(app.ctx, c.Signature)
	if err != nil {
		return err
	}
	e := app.catalog.Resolve(app.ctx, d, function.IsIdentical)
	if e == nil {
		return moerr.NewInvalidArg(app.ctx, "signature", d.String())
	}
	sig := e.Signature()
	fmt.Fprintf(app.out, "signature:    %s\n", e)
	fmt.Fprintf(app.out, "category:     %s\n", sig.Category())
	fmt.Fprintf(app.out, "provenance:   %s\n", e.Provenance())
	fmt.Fprintf(app.out, "overload id:  %d\n", e.OverloadID())
	fmt.Fprintf(app.out, "returns:      %s\n", sig.ReturnType())
	if sig.Category() == function.AGGREGATE_FUNCTION {
		fmt.Fprintf(app.out, "intermediate: %s\n", sig.IntermediateType())
	}
	fmt.Fprintf(app.out, "visible:      %t\n", sig.UserVisible())
	for _, stage := range function.AllStages {
		if hook := sig.Hook(stage); hook != "" {
			fmt.Fprintf(app.out, "%-13s %s\n", stage.String()+":", hook)
		}
	}
	return nil
}

type statsCmd struct {
	Ceiling string   `name:"ceiling" help:"Loosest compare mode for the calls."`
	Calls   []string `arg:"" optional:"" help:"Calls to resolve before printing."`
}

func (c *statsCmd) Run(app *application) error {
	if len(c.Calls) > 0 {
		if _, _, err := app.resolve(c.Calls, c.Ceiling); err != nil {
			return err
		}
	}
	fmt.Fprint(app.out, app.catalog.Stats().String())
	return nil
}

type configCmd struct{}

func (c *configCmd) Run(app *application) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(app.cfg); err != nil {
		return moerr.ConvertGoError(app.ctx, err)
	}
	_, err := io.WriteString(app.out, sb.String())
	return err
}
