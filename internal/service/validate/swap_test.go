package validate

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    dto.QuoteRequest
		fields []string
	}{
		{
			name: "valid",
			req:  dto.QuoteRequest{TokenIn: "0.0.1456986", TokenOut: "0.0.456858", AmountIn: "1.5"},
		},
		{
			name:   "all missing",
			req:    dto.QuoteRequest{},
			fields: []string{"tokenIn", "tokenOut", "amountIn"},
		},
		{
			name:   "same tokens",
			req:    dto.QuoteRequest{TokenIn: "0.0.1456986", TokenOut: "0.0.1456986", AmountIn: "1"},
			fields: []string{"tokenOut"},
		},
		{
			name: "zero amount is not a shape error",
			req:  dto.QuoteRequest{TokenIn: "0.0.1456986", TokenOut: "0.0.456858", AmountIn: "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := QuoteRequestValidate(tt.req)
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, apperrors.ErrValidation)

			var appErr *apperrors.Error
			require.True(t, errors.As(err, &appErr))
			got := make([]string, 0, len(appErr.Fields))
			for _, f := range appErr.Fields {
				got = append(got, f.Field)
			}
			require.Equal(t, tt.fields, got)
		})
	}
}

func TestSwapRequestValidate(t *testing.T) {
	t.Parallel()

	err := SwapRequestValidate(dto.SwapRequest{
		TokenIn:   "0.0.1456986",
		TokenOut:  "0.0.456858",
		AmountIn:  "1",
		Recipient: "0x00000000000000000000000000000000000003e9",
	})
	require.NoError(t, err)

	err = SwapRequestValidate(dto.SwapRequest{TokenIn: "0.0.1456986", TokenOut: "0.0.456858", AmountIn: "1"})
	require.NoError(t, err)

	err = SwapRequestValidate(dto.SwapRequest{TokenOut: "0.0.456858", Recipient: "bob"})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Equal(t,
		`Invalid parameters: Field "tokenIn" - Required; Field "amountIn" - Required; `+
			`Field "recipient" - must be an account id (0.0.N) or an EVM address`,
		err.Error(),
	)
}
