package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fleshka4/saucerswap-normaliser/internal/hedera"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
	"github.com/fleshka4/saucerswap-normaliser/internal/units"
)

// rateScale is the number of fractional digits kept in QuoteResult.Rate.
const rateScale = 18

// SwapService represents struct for business logic.
type SwapService struct {
	norm   *Normaliser
	quotes QuoteEngine
	log    *zap.Logger
}

// NewSwapService creates SwapService.
func NewSwapService(norm *Normaliser, quotes QuoteEngine, log *zap.Logger) *SwapService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SwapService{norm: norm, quotes: quotes, log: log}
}

// Quote normalises req and prices it against the quoter contract.
func (s *SwapService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResult, error) {
	nq, err := s.norm.NormaliseQuote(ctx, req)
	if err != nil {
		return nil, err
	}

	amountOut, err := s.quotes.GetSwapQuote(ctx, nq.TokenIn, nq.TokenOut, nq.AmountIn, nq.FeeHex)
	if err != nil {
		return nil, err
	}

	rate := decimal.NewFromBigInt(amountOut, 0).
		DivRound(decimal.NewFromBigInt(nq.AmountIn, 0), rateScale)

	s.log.Debug("quote",
		zap.String("token_in", nq.TokenInID),
		zap.String("token_out", nq.TokenOutID),
		zap.String("amount_in", nq.AmountIn.String()),
		zap.String("amount_out", amountOut.String()),
		zap.String("fee", nq.FeeHex),
	)

	return &dto.QuoteResult{
		TokenIn:          nq.TokenIn,
		TokenOut:         nq.TokenOut,
		FeeHex:           nq.FeeHex,
		AmountIn:         nq.AmountIn,
		AmountOut:        amountOut,
		AmountInDisplay:  units.FromBaseUnit(nq.AmountIn, nq.TokenInDecimals),
		AmountOutDisplay: units.FromBaseUnit(amountOut, nq.TokenOutDecimals),
		Rate:             rate,
	}, nil
}

// SwapParams returns the router call that performs req.
func (s *SwapService) SwapParams(ctx context.Context, req dto.SwapRequest) (*dto.NormalisedSwapExecution, error) {
	return s.norm.NormaliseSwapExecution(ctx, req)
}

// TokenDecimals reads decimals() of a token given as id or EVM address.
func (s *SwapService) TokenDecimals(ctx context.Context, token string) (uint8, error) {
	ref, err := hedera.ParseTokenRef(token)
	if err != nil {
		return 0, err
	}
	return s.quotes.GetDecimals(ctx, ref.EVM)
}
