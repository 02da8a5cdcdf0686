package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fleshka4/saucerswap-normaliser/internal/app"
	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/config"
	"github.com/fleshka4/saucerswap-normaliser/internal/service"
	servicedto "github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
	"github.com/fleshka4/saucerswap-normaliser/internal/transport/http/dto"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "swapctl",
		Short:        "SaucerSwap V2 quotes and swap call data",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config")
	root.PersistentFlags().String("network", "", "mainnet or testnet, overrides config")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	quoteCmd := &cobra.Command{
		Use:   "quote <tokenIn> <tokenOut> <amountIn>",
		Short: "Quote an exact input swap",
		Args:  cobra.ExactArgs(3),
		RunE:  runQuote,
	}
	root.AddCommand(quoteCmd)

	swapCmd := &cobra.Command{
		Use:   "swap-params <tokenIn> <tokenOut> <amountIn>",
		Short: "Print the router call for an exact input swap",
		Args:  cobra.ExactArgs(3),
		RunE:  runSwapParams,
	}
	swapCmd.Flags().String("recipient", "", "recipient account id or EVM address, defaults to the operator")
	root.AddCommand(swapCmd)

	decimalsCmd := &cobra.Command{
		Use:   "decimals <token>",
		Short: "Read decimals() of a token",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecimals,
	}
	root.AddCommand(decimalsCmd)

	return root
}

func runQuote(cmd *cobra.Command, args []string) error {
	svc, ctx, stop, err := setup(cmd)
	if err != nil {
		return err
	}
	defer stop()

	res, err := svc.Quote(ctx, servicedto.QuoteRequest{TokenIn: args[0], TokenOut: args[1], AmountIn: args[2]})
	if err != nil {
		return printErr(cmd, err)
	}
	return printJSON(cmd, dto.NewQuoteResponse(res))
}

func runSwapParams(cmd *cobra.Command, args []string) error {
	svc, ctx, stop, err := setup(cmd)
	if err != nil {
		return err
	}
	defer stop()

	recipient, _ := cmd.Flags().GetString("recipient")
	res, err := svc.SwapParams(ctx, servicedto.SwapRequest{
		TokenIn:   args[0],
		TokenOut:  args[1],
		AmountIn:  args[2],
		Recipient: recipient,
	})
	if err != nil {
		return printErr(cmd, err)
	}
	return printJSON(cmd, dto.NewSwapResponse(res))
}

func runDecimals(cmd *cobra.Command, args []string) error {
	svc, ctx, stop, err := setup(cmd)
	if err != nil {
		return err
	}
	defer stop()

	d, err := svc.TokenDecimals(ctx, args[0])
	if err != nil {
		return printErr(cmd, err)
	}
	return printJSON(cmd, dto.DecimalsResponse{Token: args[0], Decimals: d})
}

func setup(cmd *cobra.Command) (service.Service, context.Context, context.CancelFunc, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, nil, nil, err
	}

	if network, _ := cmd.Flags().GetString("network"); network != "" {
		if err := os.Setenv(config.EnvNetwork, network); err != nil {
			return nil, nil, nil, err
		}
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, printErr(cmd, err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	svc, err := app.NewService(cfg, logger)
	if err != nil {
		return nil, nil, nil, printErr(cmd, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	return svc, ctx, func() {
		stop()
		_ = logger.Sync()
	}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printErr writes typed errors as JSON to stderr and returns err unchanged.
func printErr(cmd *cobra.Command, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		enc := json.NewEncoder(cmd.ErrOrStderr())
		enc.SetIndent("", "  ")
		_ = enc.Encode(dto.NewErrorResponse(appErr))
	}
	return err
}
