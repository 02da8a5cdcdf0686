package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fleshka4/saucerswap-normaliser/internal/transport/http/dto"
)

func (s *Server) handleQuote(c echo.Context) error {
	var q dto.QuoteQuery
	if err := c.Bind(&q); err != nil {
		return err
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	res, err := s.svc.Quote(ctx, q.ToService())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewQuoteResponse(res))
}

func (s *Server) handleSwap(c echo.Context) error {
	var q dto.SwapQuery
	if err := c.Bind(&q); err != nil {
		return err
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	res, err := s.svc.SwapParams(ctx, q.ToService())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewSwapResponse(res))
}

func (s *Server) handleDecimals(c echo.Context) error {
	token := strings.TrimSpace(c.QueryParam("token"))

	ctx, cancel := s.requestContext(c)
	defer cancel()

	d, err := s.svc.TokenDecimals(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.DecimalsResponse{Token: token, Decimals: d})
}

// requestContext bounds a handler by the configured request timeout, if any.
func (s *Server) requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(c.Request().Context())
	}
	return context.WithTimeout(c.Request().Context(), s.requestTimeout)
}
