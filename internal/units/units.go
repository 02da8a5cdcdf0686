package units

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
)

// ParseAmount parses a human-readable decimal amount such as "1.5".
// Empty, unparseable, zero and negative inputs are rejected with INVALID_AMOUNT.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.InvalidAmount(s)
	}
	if !d.IsPositive() {
		return decimal.Zero, apperrors.InvalidAmount(s)
	}
	return d, nil
}

// maxUint256Digits is the decimal length of 2^256-1.
const maxUint256Digits = 78

// ToBaseUnit scales amount by 10^decimals and truncates toward zero.
//
// Fractional digits beyond the token precision are dropped. An amount that
// is not positive, truncates to zero base units or does not fit in uint256
// is INVALID_AMOUNT.
func ToBaseUnit(amount decimal.Decimal, decimals uint8) (*big.Int, error) {
	if !amount.IsPositive() {
		return nil, apperrors.InvalidAmount(amount.String())
	}

	// Integer digits of the scaled value, known before it is materialised.
	intDigits := int64(amount.NumDigits()) + int64(amount.Exponent()) + int64(decimals)
	if intDigits <= 0 || intDigits > maxUint256Digits {
		return nil, apperrors.InvalidAmount(amount.String())
	}

	base := amount.Shift(int32(decimals)).Truncate(0).BigInt()
	if base.Sign() <= 0 || base.Cmp(math.MaxBig256) > 0 {
		return nil, apperrors.InvalidAmount(amount.String())
	}
	return base, nil
}

// FromBaseUnit is the exact inverse of ToBaseUnit for display purposes.
func FromBaseUnit(amount *big.Int, decimals uint8) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -int32(decimals))
}
