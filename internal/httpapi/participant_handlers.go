package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"huntly/internal/participants"
)

func (s *Server) handleListParticipants(c *fiber.Ctx) error {
	list, err := participants.ListParticipants(s.db)
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to list participants", err)
	}
	summaries := participants.SummarizeAll(list, s.cfg.TotalCodes)
	return c.JSON(fiber.Map{"participants": summaries, "total": len(summaries)})
}

type createParticipantRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	ExternalID  string `json:"external_id"`
}

func (s *Server) handleCreateParticipant(c *fiber.Ctx) error {
	var req createParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "invalid request body", nil)
	}
	if err := s.validate.Struct(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, "invalid participant payload", nil)
	}

	p := &participants.Participant{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		ExternalID:  req.ExternalID,
	}
	if err := participants.CreateParticipant(s.db, p); err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to create participant", err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) handleResetParticipant(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := participants.ResetParticipant(s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.fail(c, fiber.StatusNotFound, "participant not found", nil)
		}
		return s.fail(c, fiber.StatusInternalServerError, "failed to reset participant", err)
	}
	s.logger.Info("Participant progress reset", "participant_id", id)
	return c.JSON(fiber.Map{"status": "reset", "id": id})
}
