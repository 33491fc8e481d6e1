// Package httpapi exposes the analytics and lottery core over HTTP for the
// campaign admin dashboard.
package httpapi

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"huntly/internal/analytics"
	"huntly/internal/config"
	"huntly/internal/lottery"
)

// Server wires the domain services into a fiber application.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *gorm.DB
	stats    *analytics.Service
	selector *lottery.Selector
	history  *lottery.GormHistoryStore
	validate *validator.Validate
}

// NewServer creates the HTTP server around already-initialized services.
func NewServer(cfg *config.Config, logger *slog.Logger, db *gorm.DB, stats *analytics.Service, selector *lottery.Selector, history *lottery.GormHistoryStore) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		stats:    stats,
		selector: selector,
		history:  history,
		validate: validator.New(),
	}
}

// BuildApp assembles the fiber app with middleware and all routes mounted.
func (s *Server) BuildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     s.cfg.AppName,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", s.handleHealth)

	v1 := app.Group("/api/v1")

	v1.Get("/stats/campaign", s.handleCampaignStats)
	v1.Get("/stats/locations", s.handleLocationStats)
	v1.Get("/stats/discovery", s.handleDiscoveryStats)
	v1.Post("/stats/recalculate", s.handleRecalculate)

	v1.Get("/participants", s.handleListParticipants)
	v1.Post("/participants", s.handleCreateParticipant)
	v1.Post("/participants/:id/reset", s.handleResetParticipant)

	v1.Get("/locations", s.handleListLocations)
	v1.Put("/locations", s.handleUpsertLocation)
	v1.Delete("/locations/:code", s.handleDeleteLocation)

	v1.Get("/lottery/entries", s.handleLotteryEntries)
	v1.Post("/lottery/draw", s.handleDraw)
	v1.Get("/lottery/winners", s.handleListWinners)
	v1.Delete("/lottery/winners", s.handleClearWinners)

	v1.Get("/export/participants.xlsx", s.handleExportParticipants)
	v1.Get("/export/entries.xlsx", s.handleExportEntries)
	v1.Get("/export/winners.xlsx", s.handleExportWinners)

	return app
}

// handleHealth reports process and database liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) fail(c *fiber.Ctx, status int, msg string, err error) error {
	if err != nil {
		s.logger.Error(msg, slog.Any("error", err), slog.String("path", c.Path()))
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
