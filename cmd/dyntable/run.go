package main

import (
	"context"
	"io"

	"github.com/raywall/dyntable/dyndb"
	"github.com/raywall/dyntable/pkg/config"
	"github.com/raywall/dyntable/pkg/metrics"
	"github.com/raywall/dyntable/pkg/render"
	"github.com/rs/zerolog"
)

type runOptions struct {
	cfg     *config.Config
	region  string
	client  dyndb.ScanAPI
	palette render.Palette
	out     io.Writer
	log     zerolog.Logger
	metrics metrics.Provider
}

// run contém a lógica principal testável: Scan completo e só então a
// impressão. Se o Scan falhar nada é escrito em out.
func run(ctx context.Context, opts runOptions) error {
	scanner := dyndb.NewScanner(opts.client,
		dyndb.WithLogger(opts.log),
		dyndb.WithMetrics(opts.metrics),
		dyndb.WithPageSize(opts.cfg.PageSize),
		dyndb.WithConsistentRead(opts.cfg.ConsistentRead),
	)

	tbl, err := scanner.ScanAll(ctx, opts.cfg.Table)
	if err != nil {
		return err
	}

	view := render.NewTableView(opts.palette, opts.log)

	if opts.cfg.Info {
		info := render.Info{
			ClientVersion: dynamoClientVersion(),
			Region:        opts.region,
			Table:         opts.cfg.Table,
		}
		if err := view.RenderInfo(opts.out, info); err != nil {
			return err
		}
	}

	schema := render.ResolveSchema(tbl)
	if len(schema) == 0 {
		opts.log.Warn().Msg("table is empty")
		return nil
	}
	return view.Render(opts.out, schema, tbl)
}
