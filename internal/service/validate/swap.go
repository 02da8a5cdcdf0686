package validate

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/multierr"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/hedera"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
)

type fieldError struct {
	field  string
	reason string
}

func (e *fieldError) Error() string {
	return e.field + ": " + e.reason
}

func violation(field, reason string) error {
	return &fieldError{field: field, reason: reason}
}

// QuoteRequestValidate checks the shape of a quote request. Amount and token
// format are checked later, when they are parsed.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	return collect(pairErrors(req.TokenIn, req.TokenOut, req.AmountIn))
}

// SwapRequestValidate checks the shape of a swap request.
func SwapRequestValidate(req dto.SwapRequest) error {
	err := pairErrors(req.TokenIn, req.TokenOut, req.AmountIn)

	if r := strings.TrimSpace(req.Recipient); r != "" && !common.IsHexAddress(r) {
		if _, perr := hedera.AddressFromEntityID(r); perr != nil {
			err = multierr.Append(err, violation("recipient", "must be an account id (0.0.N) or an EVM address"))
		}
	}

	return collect(err)
}

func pairErrors(tokenIn, tokenOut, amountIn string) error {
	var err error

	tokenIn, tokenOut = strings.TrimSpace(tokenIn), strings.TrimSpace(tokenOut)
	if tokenIn == "" {
		err = multierr.Append(err, violation("tokenIn", "Required"))
	}
	if tokenOut == "" {
		err = multierr.Append(err, violation("tokenOut", "Required"))
	}
	if tokenIn != "" && strings.EqualFold(tokenIn, tokenOut) {
		err = multierr.Append(err, violation("tokenOut", "must differ from tokenIn"))
	}
	if strings.TrimSpace(amountIn) == "" {
		err = multierr.Append(err, violation("amountIn", "Required"))
	}

	return err
}

// collect folds every field error into one VALIDATION_ERROR.
func collect(err error) error {
	if err == nil {
		return nil
	}

	errs := multierr.Errors(err)
	fields := make([]apperrors.FieldViolation, 0, len(errs))
	for _, e := range errs {
		fe, ok := e.(*fieldError)
		if !ok {
			return e
		}
		fields = append(fields, apperrors.FieldViolation{Field: fe.field, Reason: fe.reason})
	}
	return apperrors.Validation(fields)
}
