package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleCampaignStats(c *fiber.Ctx) error {
	stats, err := s.stats.CampaignStats()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to compute campaign statistics", err)
	}
	return c.JSON(stats)
}

func (s *Server) handleLocationStats(c *fiber.Ctx) error {
	report, err := s.stats.LocationStats()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to compute location statistics", err)
	}
	return c.JSON(report)
}

func (s *Server) handleDiscoveryStats(c *fiber.Ctx) error {
	stats, err := s.stats.DiscoveryStats()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to compute discovery statistics", err)
	}
	return c.JSON(fiber.Map{"categories": stats})
}

func (s *Server) handleRecalculate(c *fiber.Ctx) error {
	snapshot, err := s.stats.Recalculate()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to recalculate statistics", err)
	}
	return c.JSON(snapshot)
}
