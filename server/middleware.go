// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the per-request id in both directions.
const HeaderRequestID = "X-Request-Id"

const localsRequestID = "request_id"

const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAnyOrigin    = "*"
)

// withCORS allows frontendURL with credentials, or any origin without.
func withCORS(frontendURL string) fiber.Handler {
	cfg := cors.Config{
		AllowOrigins: corsAnyOrigin,
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	}
	if frontendURL != "" {
		cfg.AllowOrigins = frontendURL
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}

// withRequestID reuses an incoming X-Request-Id or generates a UUID.
func withRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(localsRequestID, id)

		return c.Next()
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsRequestID).(string)

	return id
}

// withAccessLog writes one info line per request.
func withAccessLog(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		l.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID(c)))

		return err
	}
}
