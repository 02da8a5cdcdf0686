package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/contracts"
	"github.com/fleshka4/saucerswap-normaliser/internal/hedera"
	"github.com/fleshka4/saucerswap-normaliser/internal/path"
	"github.com/fleshka4/saucerswap-normaliser/internal/pool"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/validate"
	"github.com/fleshka4/saucerswap-normaliser/internal/units"
)

// NormaliserConfig is the per-network, immutable part of normalisation.
type NormaliserConfig struct {
	// Router is the swap router; zero when the network has none.
	Router        common.Address
	WrappedNative common.Address
	SwapGas       uint64
	Deadline      time.Duration
}

// Normaliser turns user level swap requests into router call data.
// It keeps no state between calls and is safe for concurrent use.
type Normaliser struct {
	pools    PoolSource
	accounts AccountResolver
	cfg      NormaliserConfig
	log      *zap.Logger

	now func() time.Time
}

// NewNormaliser creates a Normaliser. A nil logger disables logging.
func NewNormaliser(pools PoolSource, accounts AccountResolver, cfg NormaliserConfig, log *zap.Logger) *Normaliser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normaliser{
		pools:    pools,
		accounts: accounts,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

type parsedSwap struct {
	tokenIn  hedera.TokenRef
	tokenOut hedera.TokenRef
	amount   decimal.Decimal
}

type resolvedSwap struct {
	parsedSwap

	feeHex   string
	amountIn *big.Int

	inDecimals  uint8
	outDecimals uint8
}

// NormaliseQuote resolves tokens, pool, fee tier and base unit amount for a
// quote. It does not call the quoter.
func (n *Normaliser) NormaliseQuote(ctx context.Context, req dto.QuoteRequest) (*dto.NormalisedQuoteRequest, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, err
	}

	ps, err := parse(req.TokenIn, req.TokenOut, req.AmountIn)
	if err != nil {
		return nil, err
	}
	r, err := n.lookup(ctx, ps)
	if err != nil {
		return nil, err
	}

	return &dto.NormalisedQuoteRequest{
		TokenIn:          r.tokenIn.EVM,
		TokenOut:         r.tokenOut.EVM,
		AmountIn:         r.amountIn,
		FeeHex:           r.feeHex,
		TokenInID:        r.tokenIn.ID,
		TokenOutID:       r.tokenOut.ID,
		TokenInDecimals:  r.inDecimals,
		TokenOutDecimals: r.outDecimals,
	}, nil
}

// NormaliseSwapExecution builds multicall([exactInput, refundETH]) against
// the router. amountOutMinimum is always zero: no slippage bound is applied
// here.
func (n *Normaliser) NormaliseSwapExecution(ctx context.Context, req dto.SwapRequest) (*dto.NormalisedSwapExecution, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, err
	}

	ps, err := parse(req.TokenIn, req.TokenOut, req.AmountIn)
	if err != nil {
		return nil, err
	}
	contractID, err := n.routerContractID()
	if err != nil {
		return nil, err
	}
	r, err := n.lookup(ctx, ps)
	if err != nil {
		return nil, err
	}

	recipient, err := n.accounts.Resolve(ctx, req.Recipient)
	if err != nil {
		return nil, err
	}

	encodedPath := path.Encode(r.tokenIn.EVM, r.feeHex, r.tokenOut.EVM)
	deadline := n.now().Add(n.cfg.Deadline).Unix()

	data, err := contracts.PackSwapWithRefund(contracts.ExactInputParams{
		Path:             encodedPath,
		Recipient:        recipient,
		Deadline:         big.NewInt(deadline),
		AmountIn:         r.amountIn,
		AmountOutMinimum: big.NewInt(0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "contracts.PackSwapWithRefund")
	}

	out := &dto.NormalisedSwapExecution{
		ContractID:         contractID,
		FunctionParameters: data,
		Gas:                n.cfg.SwapGas,
	}
	if r.tokenIn.EVM == n.cfg.WrappedNative {
		out.PayableAmount = new(big.Int).Set(r.amountIn)
	}

	n.log.Debug("swap normalised",
		zap.String("router", contractID),
		zap.String("recipient", recipient.Hex()),
		zap.String("amount_in", r.amountIn.String()),
		zap.Bool("payable", out.PayableAmount != nil),
	)
	return out, nil
}

func (n *Normaliser) routerContractID() (string, error) {
	if n.cfg.Router == (common.Address{}) {
		return "", apperrors.Configuration("swap router is not configured for this network")
	}
	id, err := hedera.EntityIDFromAddress(n.cfg.Router)
	if err != nil {
		return "", apperrors.Configuration("swap router " + n.cfg.Router.Hex() + " is not a contract address")
	}
	return id, nil
}

// parse checks amount and token formats without touching the network.
func parse(tokenIn, tokenOut, amountIn string) (parsedSwap, error) {
	amount, err := units.ParseAmount(amountIn)
	if err != nil {
		return parsedSwap{}, err
	}
	in, err := hedera.ParseTokenRef(tokenIn)
	if err != nil {
		return parsedSwap{}, err
	}
	out, err := hedera.ParseTokenRef(tokenOut)
	if err != nil {
		return parsedSwap{}, err
	}
	// "0.0.N" and its long-zero address name the same token.
	if in.ID == out.ID {
		return parsedSwap{}, apperrors.Validation([]apperrors.FieldViolation{
			{Field: "tokenOut", Reason: "must differ from tokenIn"},
		})
	}
	return parsedSwap{tokenIn: in, tokenOut: out, amount: amount}, nil
}

// lookup finds the pool of the pair and converts the amount with the input
// token's decimals taken from the pool's own metadata.
func (n *Normaliser) lookup(ctx context.Context, ps parsedSwap) (*resolvedSwap, error) {
	pools, err := n.pools.ListAllPools(ctx)
	if err != nil {
		return nil, err
	}
	p, err := pool.Find(ps.tokenIn.ID, ps.tokenOut.ID, pools)
	if err != nil {
		return nil, err
	}

	inMeta, outMeta, err := pairTokens(p, ps.tokenIn.ID, ps.tokenOut.ID)
	if err != nil {
		return nil, err
	}

	base, err := units.ToBaseUnit(ps.amount, inMeta.Decimals)
	if err != nil {
		return nil, err
	}

	n.log.Debug("pool selected",
		zap.Int64("pool_id", p.ID),
		zap.String("contract_id", p.ContractID),
		zap.Uint32("fee", p.Fee),
		zap.String("token_in", ps.tokenIn.ID),
		zap.String("token_out", ps.tokenOut.ID),
	)

	return &resolvedSwap{
		parsedSwap:  ps,
		feeHex:      path.FeeHex(p.Fee),
		amountIn:    base,
		inDecimals:  inMeta.Decimals,
		outDecimals: outMeta.Decimals,
	}, nil
}

// pairTokens returns the metadata of both swap tokens embedded in p.
func pairTokens(p pool.Pool, tokenIn, tokenOut string) (pool.Token, pool.Token, error) {
	in, okIn := p.Token(tokenIn)
	out, okOut := p.Token(tokenOut)
	if !okIn || !okOut {
		return pool.Token{}, pool.Token{}, apperrors.PoolNotFound(tokenIn, tokenOut)
	}
	return in, out, nil
}
