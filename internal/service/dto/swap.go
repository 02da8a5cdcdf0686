package dto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// QuoteRequest asks for the output of swapping AmountIn (human units) of
// TokenIn into TokenOut. Tokens are "0.0.N" ids or long-zero EVM addresses.
type QuoteRequest struct {
	TokenIn  string
	TokenOut string
	AmountIn string
}

// SwapRequest is a QuoteRequest plus an optional recipient; an empty
// Recipient means the operator account.
type SwapRequest struct {
	TokenIn   string
	TokenOut  string
	AmountIn  string
	Recipient string
}

// NormalisedQuoteRequest is everything the quote engine needs.
type NormalisedQuoteRequest struct {
	TokenIn  common.Address
	TokenOut common.Address
	AmountIn *big.Int
	FeeHex   string

	TokenInID        string
	TokenOutID       string
	TokenInDecimals  uint8
	TokenOutDecimals uint8
}

// NormalisedSwapExecution is a ready to sign contract call against the
// swap router. PayableAmount is nil unless the input token is the wrapped
// native asset.
type NormalisedSwapExecution struct {
	ContractID         string
	FunctionParameters []byte
	Gas                uint64
	PayableAmount      *big.Int
}

// QuoteResult is a priced quote. Rate is AmountOut/AmountIn in base units.
type QuoteResult struct {
	TokenIn   common.Address
	TokenOut  common.Address
	FeeHex    string
	AmountIn  *big.Int
	AmountOut *big.Int

	AmountInDisplay  decimal.Decimal
	AmountOutDisplay decimal.Decimal
	Rate             decimal.Decimal
}
