package main

import (
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mattn/go-isatty"
	"github.com/raywall/dyntable/dyndb"
	"github.com/raywall/dyntable/pkg/awsconf"
	"github.com/raywall/dyntable/pkg/config"
	"github.com/raywall/dyntable/pkg/logger"
	"github.com/raywall/dyntable/pkg/metrics"
	"github.com/raywall/dyntable/pkg/observability"
	"github.com/raywall/dyntable/pkg/render"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Variáveis injetáveis para mocking
	loadAWS       = awsconf.Load
	newScanClient = func(cfg aws.Config) dyndb.ScanAPI { return dynamodb.NewFromConfig(cfg) }
)

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}
	var logLevel string

	cmd := &cobra.Command{
		Use:   "dyntable --table <name> [--region <region>] [--info]",
		Short: "Print every item of a DynamoDB table as a terminal table",
		Long: `dyntable scans a DynamoDB table, following every page of results, and prints
all items as an aligned table.

Columns come from the first item, sorted in descending order. String values
are cut at 50 characters, numbers are shown as stored and any other type is
shown as N/A.

Examples:
  dyntable --table Users
  dyntable -t Users -r sa-east-1 --info
  dyntable -t Orders --page-size 100 --no-color > orders.txt`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if err := config.NewValidator().Validate(cfg); err != nil {
				return err
			}

			log := logger.Configure(cfg.Logging, cmd.ErrOrStderr())

			provider, err := observability.SetupMetrics(cfg.Metrics)
			if err != nil {
				return err
			}
			if closer, ok := provider.(io.Closer); ok {
				defer closer.Close()
			}

			ctx := cmd.Context()
			resolved, err := loadAWS(ctx, cfg.Region, log)
			if err != nil {
				return err
			}
			region := resolved.Config.Region

			return run(ctx, runOptions{
				cfg:     cfg,
				region:  region,
				client:  newScanClient(resolved.Config),
				palette: choosePalette(cfg.NoColor, cmd.OutOrStdout()),
				out:     cmd.OutOrStdout(),
				log:     log.With().Str("table", cfg.Table).Str("region", region).Logger(),
				metrics: metrics.WithTags(provider, "region:"+region),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Table, "table", "t", "", "DynamoDB table name (required)")
	flags.StringVarP(&cfg.Region, "region", "r", "", "AWS region (default: SDK chain, then "+config.FallbackRegion+")")
	flags.BoolVarP(&cfg.Info, "info", "i", false, "print client version, region and table before the items")
	flags.Int32Var(&cfg.PageSize, "page-size", 0, "items evaluated per Scan request (0 = DynamoDB default)")
	flags.BoolVar(&cfg.ConsistentRead, "consistent-read", false, "use strongly consistent reads")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable colors")
	flags.StringVar(&logLevel, "log-level", "", "log level on stderr (overrides DYNTABLE_LOG_LEVEL)")

	return cmd
}

// choosePalette desliga as cores com --no-color, NO_COLOR ou quando a saída
// não é um terminal.
func choosePalette(noColor bool, out io.Writer) render.Palette {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return render.PlainPalette()
	}
	f, ok := out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return render.PlainPalette()
	}
	return render.DefaultPalette()
}
