// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/katalvlaran/stoich"
	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/compound"
	"github.com/katalvlaran/stoich/elements"
	"go.uber.org/zap"
)

// BalanceRequest is the body of POST /equation/balance.
type BalanceRequest struct {
	Equation string `json:"equation"`
}

// BalanceResponse is the 200 body of POST /equation/balance.
type BalanceResponse struct {
	Balanced  string         `json:"balanced"`
	Reactants []balance.Term `json:"reactants"`
	Products  []balance.Term `json:"products"`
}

// ErrorResponse is returned for every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleBalance(c *fiber.Ctx) error {
	var req BalanceRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body: " + err.Error()})
	}

	opts := []compound.Option{compound.WithLogger(s.logger.With(zap.String("request_id", requestID(c))))}
	if s.strict {
		opts = append(opts, compound.WithStrictMultipliers())
	}

	start := time.Now()
	res, err := stoich.Balance(req.Equation, s.table, opts...)
	s.metrics.observe(time.Since(start), err)
	if err != nil {
		kind := stoich.KindOf(err)
		if kind == stoich.KindUnknown {
			s.logger.Error("balance failed", zap.Error(err), zap.String("request_id", requestID(c)))

			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
		}

		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: err.Error(), Kind: kind.String()})
	}

	return c.JSON(BalanceResponse{
		Balanced:  res.String(),
		Reactants: res.Reactants,
		Products:  res.Products,
	})
}

func (s *Server) handleAtoms(c *fiber.Ctx) error {
	return c.JSON(elements.Document{Atoms: s.table.Atoms()})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

// errorHandler renders fiber errors (404, 405, body limits) as ErrorResponse.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}
