package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"huntly/internal/export"
	"huntly/internal/participants"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to render workbook", err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func (s *Server) handleExportParticipants(c *fiber.Ctx) error {
	list, err := participants.ListParticipants(s.db)
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to list participants", err)
	}
	f, err := export.ParticipantsWorkbook(participants.SummarizeAll(list, s.cfg.TotalCodes))
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to build participants export", err)
	}
	return s.sendWorkbook(c, f, "participants.xlsx")
}

func (s *Server) handleExportEntries(c *fiber.Ctx) error {
	entries, err := s.selector.Entries()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to build lottery entries", err)
	}
	f, err := export.EntriesWorkbook(entries)
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to build entries export", err)
	}
	return s.sendWorkbook(c, f, "entries.xlsx")
}

func (s *Server) handleExportWinners(c *fiber.Ctx) error {
	records, err := s.history.ListAll()
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to list winners", err)
	}
	f, err := export.WinnersWorkbook(records)
	if err != nil {
		return s.fail(c, fiber.StatusInternalServerError, "failed to build winners export", err)
	}
	return s.sendWorkbook(c, f, "winners.xlsx")
}
