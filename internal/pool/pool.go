package pool

import (
	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
)

// Token is the token metadata embedded in a pool record of the pool index.
type Token struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Symbol               string  `json:"symbol"`
	Decimals             uint8   `json:"decimals"`
	PriceUsd             float64 `json:"priceUsd"`
	Icon                 string  `json:"icon"`
	Price                string  `json:"price"`
	DueDiligenceComplete bool    `json:"dueDiligenceComplete"`
	IsFeeOnTransferToken bool    `json:"isFeeOnTransferToken"`
}

// Pool is a V2 liquidity pool for an unordered token pair. Venue state
// (SqrtRatioX96, Liquidity, TickCurrent) is informational only.
type Pool struct {
	ID           int64  `json:"id"`
	ContractID   string `json:"contractId"`
	TokenA       Token  `json:"tokenA"`
	TokenB       Token  `json:"tokenB"`
	AmountA      string `json:"amountA"`
	AmountB      string `json:"amountB"`
	Fee          uint32 `json:"fee"`
	SqrtRatioX96 string `json:"sqrtRatioX96"`
	TickCurrent  int32  `json:"tickCurrent"`
	Liquidity    string `json:"liquidity"`
}

// Token returns the embedded metadata of the pool token with the given
// native id.
func (p Pool) Token(id string) (Token, bool) {
	switch id {
	case p.TokenA.ID:
		return p.TokenA, true
	case p.TokenB.ID:
		return p.TokenB, true
	}
	return Token{}, false
}

// Has reports whether the pool trades exactly the unordered pair {a, b}.
func (p Pool) Has(a, b string) bool {
	return (p.TokenA.ID == a && p.TokenB.ID == b) ||
		(p.TokenA.ID == b && p.TokenB.ID == a)
}

// Find returns the first pool in pools trading the unordered pair
// {tokenA, tokenB}, compared by native token id. When several fee tiers exist
// for the same pair the earliest entry wins.
func Find(tokenA, tokenB string, pools []Pool) (Pool, error) {
	for _, p := range pools {
		if p.Has(tokenA, tokenB) {
			return p, nil
		}
	}
	return Pool{}, apperrors.PoolNotFound(tokenA, tokenB)
}
