package http

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/config"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
	"github.com/fleshka4/saucerswap-normaliser/internal/service/mock"
	httpdto "github.com/fleshka4/saucerswap-normaliser/internal/transport/http/dto"
)

func newTestServer(t *testing.T) (*Server, *mock.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockService(ctrl)
	server, err := NewServer(mockService, &config.Config{}, nil)
	require.NoError(t, err)
	return server, mockService
}

func do(t *testing.T, server *Server, method, target string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	resp := w.Result()
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			log.Printf("Body.Close: %v", err)
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestNewServer_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := NewServer(nil, nil, nil)
	require.Error(t, err)
}

func TestPingHandler(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	status, body := do(t, server, http.MethodGet, "/ping")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "pong", string(body))
}

func TestQuoteHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Quote(gomock.Any(), dto.QuoteRequest{TokenIn: "0.0.1456986", TokenOut: "0.0.456858", AmountIn: "1.5"}).
			Return(&dto.QuoteResult{
				TokenIn:          common.HexToAddress("0x0000000000000000000000000000000000163b5a"),
				TokenOut:         common.HexToAddress("0x000000000000000000000000000000000006f89a"),
				FeeHex:           "0x000bb8",
				AmountIn:         big.NewInt(150_000_000),
				AmountOut:        big.NewInt(75_000),
				AmountInDisplay:  decimal.RequireFromString("1.5"),
				AmountOutDisplay: decimal.RequireFromString("0.075"),
				Rate:             decimal.RequireFromString("0.0005"),
			}, nil)

		status, body := do(t, server, http.MethodGet, "/quote?tokenIn=0.0.1456986&tokenOut=0.0.456858&amountIn=1.5")
		require.Equal(t, http.StatusOK, status)

		var res httpdto.QuoteResponse
		require.NoError(t, json.Unmarshal(body, &res))
		require.Equal(t, "0x0000000000000000000000000000000000163b5a", res.TokenIn)
		require.Equal(t, "150000000", res.AmountIn)
		require.Equal(t, "75000", res.AmountOut)
		require.Equal(t, "0.075", res.AmountOutDisplay)
		require.Equal(t, "0x000bb8", res.Fee)
		require.Equal(t, "0.0005", res.Rate)
	})

	t.Run("method not allowed", func(t *testing.T) {
		status, _ := do(t, server, http.MethodPost, "/quote")
		require.Equal(t, http.StatusMethodNotAllowed, status)
	})

	testServiceError := func(t *testing.T, serviceError error, expectedStatusCode int, expectedCode string) {
		mockService.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(nil, serviceError)

		status, body := do(t, server, http.MethodGet, "/quote?tokenIn=0.0.1&tokenOut=0.0.2&amountIn=1")
		require.Equal(t, expectedStatusCode, status)

		var res httpdto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &res))
		require.Equal(t, expectedCode, res.Code)
	}

	t.Run("service error - validation", func(t *testing.T) {
		testServiceError(t,
			apperrors.Validation([]apperrors.FieldViolation{{Field: "tokenIn", Reason: "Required"}}),
			http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("service error - invalid amount", func(t *testing.T) {
		testServiceError(t, apperrors.InvalidAmount("0"), http.StatusBadRequest, "INVALID_AMOUNT")
	})

	t.Run("service error - invalid token", func(t *testing.T) {
		testServiceError(t, apperrors.InvalidTokenAddress("x"), http.StatusBadRequest, "INVALID_TOKEN_ADDRESS")
	})

	t.Run("service error - pool not found", func(t *testing.T) {
		testServiceError(t, apperrors.PoolNotFound("0.0.1", "0.0.2"), http.StatusNotFound, "POOL_NOT_FOUND")
	})

	t.Run("service error - mirror node", func(t *testing.T) {
		testServiceError(t, apperrors.MirrorNode(http.StatusTooManyRequests, "Call failed with status 429"),
			http.StatusBadGateway, "MIRROR_NODE_ERROR")
	})

	t.Run("service error - wrapped configuration", func(t *testing.T) {
		testServiceError(t, errors.Wrap(apperrors.Configuration("router missing"), "wrap"),
			http.StatusInternalServerError, "CONFIGURATION_ERROR")
	})

	t.Run("service error - unknown", func(t *testing.T) {
		testServiceError(t, errors.New("boom"), http.StatusInternalServerError, "INTERNAL")
	})
}

func TestSwapHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	t.Run("payable", func(t *testing.T) {
		mockService.EXPECT().
			SwapParams(gomock.Any(), dto.SwapRequest{
				TokenIn: "0.0.1456986", TokenOut: "0.0.456858", AmountIn: "1.5", Recipient: "0.0.1001",
			}).
			Return(&dto.NormalisedSwapExecution{
				ContractID:         "0.0.3949434",
				FunctionParameters: []byte{0xac, 0x96, 0x50, 0xd8},
				Gas:                3_000_000,
				PayableAmount:      big.NewInt(150_000_000),
			}, nil)

		status, body := do(t, server, http.MethodGet,
			"/swap?tokenIn=0.0.1456986&tokenOut=0.0.456858&amountIn=1.5&recipient=0.0.1001")
		require.Equal(t, http.StatusOK, status)

		var res httpdto.SwapResponse
		require.NoError(t, json.Unmarshal(body, &res))
		require.Equal(t, "0.0.3949434", res.ContractID)
		require.Equal(t, "0xac9650d8", res.FunctionParameters)
		require.Equal(t, uint64(3_000_000), res.Gas)
		require.NotNil(t, res.PayableAmount)
		require.Equal(t, "150000000", *res.PayableAmount)
	})

	t.Run("not payable", func(t *testing.T) {
		mockService.EXPECT().
			SwapParams(gomock.Any(), gomock.Any()).
			Return(&dto.NormalisedSwapExecution{ContractID: "0.0.3949434", Gas: 3_000_000}, nil)

		status, body := do(t, server, http.MethodGet, "/swap?tokenIn=0.0.456858&tokenOut=0.0.1456986&amountIn=1")
		require.Equal(t, http.StatusOK, status)
		require.NotContains(t, string(body), "payableAmount")
	})
}

func TestDecimalsHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	mockService.EXPECT().TokenDecimals(gomock.Any(), "0.0.456858").Return(uint8(6), nil)

	status, body := do(t, server, http.MethodGet, "/decimals?token=0.0.456858")
	require.Equal(t, http.StatusOK, status)

	var res httpdto.DecimalsResponse
	require.NoError(t, json.Unmarshal(body, &res))
	require.Equal(t, uint8(6), res.Decimals)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	status, body := do(t, server, http.MethodGet, "/estimate")
	require.Equal(t, http.StatusNotFound, status)

	var res httpdto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &res))
	require.Equal(t, "NOT_FOUND", res.Code)
}

func TestRun_GracefulShutdown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	server, err := NewServer(mock.NewMockService(ctrl), &config.Config{GraceTimeout: time.Second}, nil)
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, addr)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/ping")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
