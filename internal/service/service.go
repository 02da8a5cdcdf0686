package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fleshka4/saucerswap-normaliser/internal/pool"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Service represents interface for business logic.
type Service interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResult, error)
	SwapParams(ctx context.Context, req dto.SwapRequest) (*dto.NormalisedSwapExecution, error)
	TokenDecimals(ctx context.Context, token string) (uint8, error)
}

// PoolSource lists every pool of the pool index.
type PoolSource interface {
	ListAllPools(ctx context.Context) ([]pool.Pool, error)
}

// AccountResolver maps an optional recipient to its EVM address.
type AccountResolver interface {
	Resolve(ctx context.Context, recipient string) (common.Address, error)
}

// QuoteEngine prices swaps and reads token decimals on chain.
type QuoteEngine interface {
	GetSwapQuote(ctx context.Context, tokenIn, tokenOut common.Address, amountIn *big.Int, feeHex string) (*big.Int, error)
	GetDecimals(ctx context.Context, token common.Address) (uint8, error)
}
