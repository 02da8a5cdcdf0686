package app

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fleshka4/saucerswap-normaliser/internal/account"
	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/config"
	"github.com/fleshka4/saucerswap-normaliser/internal/infra/jsonrpc"
	"github.com/fleshka4/saucerswap-normaliser/internal/infra/mirrornode"
	"github.com/fleshka4/saucerswap-normaliser/internal/infra/saucerswap"
	"github.com/fleshka4/saucerswap-normaliser/internal/quote"
	"github.com/fleshka4/saucerswap-normaliser/internal/service"
)

// NewLogger builds a production JSON logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrap(err, "cfg.Level.UnmarshalText")
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// NewService wires the adapters of the configured network into a
// SwapService.
func NewService(cfg *config.Config, log *zap.Logger) (*service.SwapService, error) {
	if log == nil {
		log = zap.NewNop()
	}

	network, err := cfg.ResolveNetwork()
	if err != nil {
		return nil, err
	}

	mirror := mirrornode.NewClient(network.MirrorNodeURL, cfg.HTTPTimeout)
	pools, err := saucerswap.NewClient(network.PoolsAPIURL, cfg.APIKey, cfg.HTTPTimeout, cfg.PoolsRateLimit)
	if err != nil {
		return nil, err
	}

	var caller quote.Caller = mirror
	if cfg.CallBackend == config.BackendJSONRPC {
		relay, err := jsonrpc.NewClient(network.JSONRPCURL, cfg.HTTPTimeout)
		if err != nil {
			return nil, apperrors.Configuration("json_rpc_url: " + err.Error())
		}
		caller = relay
	}

	from, err := cfg.CallSender()
	if err != nil {
		return nil, err
	}

	engine := quote.NewEngine(caller, quote.Config{
		Quoter:      network.Quoter,
		From:        from,
		QuoteGas:    cfg.QuoteGasLimit,
		DecimalsGas: cfg.DecimalsGasLimit,
		GasPrice:    cfg.GasPrice,
	})

	norm := service.NewNormaliser(
		pools,
		account.NewResolver(mirror, cfg.OperatorAccountID),
		service.NormaliserConfig{
			Router:        network.Router,
			WrappedNative: network.WrappedNative,
			SwapGas:       cfg.SwapGasLimit,
			Deadline:      cfg.Deadline,
		},
		log.Named("normaliser"),
	)

	log.Info("service configured",
		zap.String("network", network.Name),
		zap.String("mirror_node", network.MirrorNodeURL),
		zap.String("pools_api", network.PoolsAPIURL),
		zap.String("call_backend", cfg.CallBackend),
		zap.String("call_from", from.Hex()),
		zap.String("router", network.Router.Hex()),
		zap.String("quoter", network.Quoter.Hex()),
	)

	return service.NewSwapService(norm, engine, log.Named("service")), nil
}
