package awsconf

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/raywall/dyntable/pkg/config"
	"github.com/rs/zerolog"
)

// Origem da região resolvida, usada apenas em log.
const (
	SourceFlag     = "flag"
	SourceChain    = "default-chain"
	SourceFallback = "fallback"
)

// Resolved é a configuração da AWS pronta para criar clientes.
type Resolved struct {
	Config       aws.Config
	RegionSource string
}

// Load carrega a configuração da AWS (env vars, profile, IAM role).
//
// A região segue a ordem: flag explícita, cadeia padrão do SDK e, por fim,
// config.FallbackRegion. As credenciais são resolvidas aqui para que falhas
// apareçam como *config.ConfigurationError antes de qualquer Scan.
func Load(ctx context.Context, region string, log zerolog.Logger) (Resolved, error) {
	var opts []func(*awsconfig.LoadOptions) error
	source := SourceChain
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
		source = SourceFlag
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return Resolved{}, &config.ConfigurationError{Field: "aws config", Reason: "could not be loaded", Err: err}
	}

	if cfg.Region == "" {
		cfg.Region = config.FallbackRegion
		source = SourceFallback
	}

	if cfg.Credentials == nil {
		return Resolved{}, &config.ConfigurationError{Field: "aws credentials", Reason: "are not configured"}
	}
	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return Resolved{}, &config.ConfigurationError{Field: "aws credentials", Reason: "could not be resolved", Err: err}
	}

	log.Debug().
		Str("region", cfg.Region).
		Str("region_source", source).
		Str("credentials_source", creds.Source).
		Msg("aws config loaded")

	return Resolved{Config: cfg, RegionSource: source}, nil
}
