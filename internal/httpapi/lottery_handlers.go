package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"huntly/internal/lottery"
)

func (s *Server) handleLotteryEntries(c *fiber.Ctx) error {
	entries, err := s.selector.Entries()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to build lottery entries", err)
	}
	return c.JSON(fiber.Map{
		"entries": entries,
		"stats":   lottery.SummarizeEntries(entries),
	})
}

type drawRequest struct {
	Winners int `json:"winners" validate:"required,min=1"`
}

func (s *Server) handleDraw(c *fiber.Ctx) error {
	var req drawRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "invalid request body", nil)
	}
	if err := s.validate.Struct(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "winners must be at least 1", nil)
	}

	result, err := s.selector.Draw(req.Winners)
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "drawing failed", err)
	}
	return c.JSON(result)
}

func (s *Server) handleListWinners(c *fiber.Ctx) error {
	records, err := s.history.ListAll()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to list winners", err)
	}
	return c.JSON(fiber.Map{"winners": records, "total": len(records)})
}

func (s *Server) handleClearWinners(c *fiber.Ctx) error {
	if err := s.history.ClearAll(); err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to clear winner history", err)
	}
	s.logger.Info("Winner history cleared")
	return c.JSON(fiber.Map{"status": "cleared"})
}
