package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"huntly/internal/locations"
)

func (s *Server) handleListLocations(c *fiber.Ctx) error {
	list, err := locations.ListLocations(s.db)
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to list locations", err)
	}
	return c.JSON(fiber.Map{"locations": list, "total": len(list)})
}

type upsertLocationRequest struct {
	Code           string `json:"code" validate:"required"`
	LocationNumber string `json:"location_number"`
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	Active         bool   `json:"active"`
}

func (s *Server) handleUpsertLocation(c *fiber.Ctx) error {
	var req upsertLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "invalid request body", nil)
	}
	if err := s.validate.Struct(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "code and name are required", nil)
	}

	loc := &locations.Location{
		Code:           req.Code,
		LocationNumber: req.LocationNumber,
		Name:           req.Name,
		Description:    req.Description,
		Active:         req.Active,
	}
	if err := locations.UpsertLocation(s.db, loc); err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to save location", err)
	}
	return c.JSON(loc)
}

func (s *Server) handleDeleteLocation(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := locations.DeleteLocation(s.db, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.fail(c, fiber.StatusNotFound, "location not found", nil)
		}
		return s.fail(c, fiber.StatusInternalServerError, "failed to delete location", err)
	}
	s.logger.Info("Location deleted", "code", code)
	return c.JSON(fiber.Map{"status": "deleted", "code": code})
}
