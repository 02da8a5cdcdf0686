package dto

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	servicedto "github.com/fleshka4/saucerswap-normaliser/internal/service/dto"
)

// QuoteQuery is the query string of GET /quote.
type QuoteQuery struct {
	TokenIn  string `query:"tokenIn"`
	TokenOut string `query:"tokenOut"`
	AmountIn string `query:"amountIn"`
}

// SwapQuery is the query string of GET /swap.
type SwapQuery struct {
	TokenIn   string `query:"tokenIn"`
	TokenOut  string `query:"tokenOut"`
	AmountIn  string `query:"amountIn"`
	Recipient string `query:"recipient"`
}

// QuoteResponse renders a quote. Integer amounts are base units.
type QuoteResponse struct {
	TokenIn          string `json:"tokenIn"`
	TokenOut         string `json:"tokenOut"`
	Fee              string `json:"fee"`
	AmountIn         string `json:"amountIn"`
	AmountOut        string `json:"amountOut"`
	AmountInDisplay  string `json:"amountInDisplay"`
	AmountOutDisplay string `json:"amountOutDisplay"`
	Rate             string `json:"rate"`
}

// SwapResponse renders the contract call that executes a swap.
type SwapResponse struct {
	ContractID         string  `json:"contractId"`
	FunctionParameters string  `json:"functionParameters"`
	Gas                uint64  `json:"gas"`
	PayableAmount      *string `json:"payableAmount,omitempty"`
}

// DecimalsResponse renders GET /decimals.
type DecimalsResponse struct {
	Token    string `json:"token"`
	Decimals uint8  `json:"decimals"`
}

// FieldError is one violated request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	StatusCode int          `json:"upstreamStatus,omitempty"`
	Fields     []FieldError `json:"fields,omitempty"`
}

func (q QuoteQuery) ToService() servicedto.QuoteRequest {
	return servicedto.QuoteRequest{TokenIn: q.TokenIn, TokenOut: q.TokenOut, AmountIn: q.AmountIn}
}

func (q SwapQuery) ToService() servicedto.SwapRequest {
	return servicedto.SwapRequest{
		TokenIn:   q.TokenIn,
		TokenOut:  q.TokenOut,
		AmountIn:  q.AmountIn,
		Recipient: q.Recipient,
	}
}

func NewQuoteResponse(r *servicedto.QuoteResult) QuoteResponse {
	return QuoteResponse{
		TokenIn:          strings.ToLower(r.TokenIn.Hex()),
		TokenOut:         strings.ToLower(r.TokenOut.Hex()),
		Fee:              r.FeeHex,
		AmountIn:         r.AmountIn.String(),
		AmountOut:        r.AmountOut.String(),
		AmountInDisplay:  r.AmountInDisplay.String(),
		AmountOutDisplay: r.AmountOutDisplay.String(),
		Rate:             r.Rate.String(),
	}
}

func NewSwapResponse(e *servicedto.NormalisedSwapExecution) SwapResponse {
	res := SwapResponse{
		ContractID:         e.ContractID,
		FunctionParameters: hexutil.Encode(e.FunctionParameters),
		Gas:                e.Gas,
	}
	if e.PayableAmount != nil {
		v := e.PayableAmount.String()
		res.PayableAmount = &v
	}
	return res
}

func NewErrorResponse(err *apperrors.Error) ErrorResponse {
	res := ErrorResponse{
		Code:       string(err.Code),
		Message:    err.Message,
		StatusCode: err.StatusCode,
	}
	for _, f := range err.Fields {
		res.Fields = append(res.Fields, FieldError{Field: f.Field, Reason: f.Reason})
	}
	return res
}

// HTTPStatus maps an error kind to the status code of the answer.
func HTTPStatus(code apperrors.Code) int {
	switch code {
	case apperrors.CodeValidation, apperrors.CodeInvalidAmount, apperrors.CodeInvalidTokenAddress:
		return http.StatusBadRequest
	case apperrors.CodePoolNotFound:
		return http.StatusNotFound
	case apperrors.CodeMirrorNode:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
