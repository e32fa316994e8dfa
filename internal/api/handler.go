package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/internal/translate"
)

// Translator is the translation service used by the handler.
type Translator interface {
	Handle(ctx context.Context, req translate.Request) translate.Response
}

// Handler serves the translation endpoints.
type Handler struct {
	logger  *zap.Logger
	service Translator
}

// NewHandler creates a new Handler.
func NewHandler(logger *zap.Logger, service Translator) *Handler {
	return &Handler{logger: logger, service: service}
}

// Normalize handles POST /api/v1/normalize.
func (h *Handler) Normalize(c *fiber.Ctx) error {
	var req NormalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}
	return h.respond(c, h.service.Handle(c.UserContext(), req.toTranslate()))
}

// Denormalize handles POST /api/v1/denormalize.
func (h *Handler) Denormalize(c *fiber.Ctx) error {
	return h.instrument(c, translate.OpDenormalize)
}

// Parse handles POST /api/v1/parse.
func (h *Handler) Parse(c *fiber.Ctx) error {
	return h.instrument(c, translate.OpParse)
}

// Expired handles POST /api/v1/expired.
func (h *Handler) Expired(c *fiber.Ctx) error {
	return h.instrument(c, translate.OpExpired)
}

// Venues handles GET /api/v1/venues.
func (h *Handler) Venues(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"venues": translate.Venues()})
}

func (h *Handler) instrument(c *fiber.Ctx, op string) error {
	var req InstrumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}
	return h.respond(c, h.service.Handle(c.UserContext(), req.toTranslate(op)))
}

func (h *Handler) respond(c *fiber.Ctx, resp translate.Response) error {
	if resp.OK {
		return c.Status(fiber.StatusOK).JSON(resp)
	}

	h.logger.Debug("normify.api.translate.failed",
		zap.String("op", resp.Op),
		zap.String("path", c.Path()),
		zap.String("error_kind", resp.ErrorKind),
		zap.String("error", resp.Error))

	code := fiber.StatusUnprocessableEntity
	if resp.ErrorKind == translate.KindBadRequest {
		code = fiber.StatusBadRequest
	}
	return c.Status(code).JSON(resp)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":      err.Error(),
		"error_kind": translate.KindBadRequest,
	})
}
