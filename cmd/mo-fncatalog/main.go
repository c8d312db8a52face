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
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/matrixorigin/fncatalog/pkg/catalog"
	"github.com/matrixorigin/fncatalog/pkg/config"
	"github.com/matrixorigin/fncatalog/pkg/logutil"
)

type fncatalogCLI struct {
	Cfg string `name:"cfg" type:"path" help:"toml configuration of the function catalog"`

	Resolve resolveCmd `cmd:"" help:"Resolve calls such as 'min(TINYINT)' to their overloads."`
	List    listCmd    `cmd:"" help:"List the user visible overloads, optionally of names with a prefix."`
	Show    showCmd    `cmd:"" help:"Show the overload registered with exactly the given signature."`
	Stats   statsCmd   `cmd:"" help:"Resolve calls and print the resolution statistics."`
	Config  configCmd  `cmd:"" help:"Print the effective configuration as toml."`
}

var cli fncatalogCLI

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("mo-fncatalog"),
		kong.Description("Inspect the function catalog and its overload resolution."),
		kong.UsageOnError(),
	)

	ctx := logutil.ContextWithFields(context.Background(), zap.String("command", kctx.Command()))
	cfg, err := loadConfig(ctx, cli.Cfg)
	kctx.FatalIfErrorf(err)
	setupLogger(cfg)

	cat, err := catalog.New(ctx, catalog.WithParameters(cfg.Catalog))
	kctx.FatalIfErrorf(err)
	defer cat.Close()

	err = kctx.Run(&application{
		ctx:     ctx,
		cfg:     cfg,
		catalog: cat,
		out:     os.Stdout,
	})
	kctx.FatalIfErrorf(err)
}

// loadConfig reads file, or falls back to the defaults with logging kept
// quiet so that it does not mix with command output.
func loadConfig(ctx context.Context, file string) (*config.Parameters, error) {
	if file != "" {
		return config.ParseFromFile(ctx, file)
	}
	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Log.DisableCaller = true
	return cfg, nil
}

func setupLogger(cfg *config.Parameters) {
	logutil.SetupMOLogger(&cfg.Log)
}
