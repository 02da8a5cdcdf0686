package service

import (
	"context"
	"math/big"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/mock"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pools := mock.NewMockPoolSource(ctrl)
	engine := mock.NewMockQuoteEngine(ctrl)

	svc := NewSwapService(NewNormaliser(pools, nil, mainnetCfg, nil), engine, nil)

	t.Run("success", func(t *testing.T) {
		pools.EXPECT().ListAllPools(gomock.Any()).Return(testPools, nil)
		engine.EXPECT().
			GetSwapQuote(gomock.Any(), whbarEVM, usdcEVM, big.NewInt(150_000_000), "0x000bb8").
			Return(big.NewInt(75_000), nil)

		res, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TokenIn: whbarID, TokenOut: usdcID, AmountIn: "1.5",
		})
		require.NoError(t, err)
		require.Equal(t, "150000000", res.AmountIn.String())
		require.Equal(t, "75000", res.AmountOut.String())
		require.Equal(t, "1.5", res.AmountInDisplay.String())
		require.Equal(t, "0.075", res.AmountOutDisplay.String())
		require.Equal(t, "0.0005", res.Rate.String())
		require.Equal(t, "0x000bb8", res.FeeHex)
	})

	t.Run("quoter failure", func(t *testing.T) {
		pools.EXPECT().ListAllPools(gomock.Any()).Return(testPools, nil)
		engine.EXPECT().
			GetSwapQuote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.MirrorNode(http.StatusBadRequest, "Call failed with status 400"))

		res, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TokenIn: whbarID, TokenOut: usdcID, AmountIn: "1.5",
		})
		require.Nil(t, res)
		require.ErrorIs(t, err, apperrors.ErrMirrorNode)
		status, _ := apperrors.StatusCodeOf(err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TokenIn: whbarID, TokenOut: usdcID, AmountIn: "0",
		})
		require.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})
}

func TestTokenDecimals(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := mock.NewMockQuoteEngine(ctrl)
	svc := NewSwapService(NewNormaliser(nil, nil, mainnetCfg, nil), engine, nil)

	engine.EXPECT().GetDecimals(gomock.Any(), usdcEVM).Return(uint8(6), nil)

	d, err := svc.TokenDecimals(context.Background(), usdcID)
	require.NoError(t, err)
	require.Equal(t, uint8(6), d)

	_, err = svc.TokenDecimals(context.Background(), "usdc")
	require.ErrorIs(t, err, apperrors.ErrInvalidTokenAddress)
}
