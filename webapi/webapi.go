// Package webapi is the HTTP transport: it receives chat updates, hands
// them to the conversation engine, and delivers the reply. Everything here
// is plumbing; conversation correctness lives in pkg/bot.
package webapi

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/convobot/pkg/audit"
	"github.com/amirasaad/convobot/pkg/bot"
	"github.com/amirasaad/convobot/pkg/config"
	"github.com/amirasaad/convobot/pkg/dialog"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// MessageHandler processes one inbound message and returns the response
// text. Satisfied by *bot.Engine.
type MessageHandler interface {
	Handle(ctx context.Context, user dialog.User, text string) string
}

var validate = validator.New()

// NewApp builds the fiber application with the webhook route.
func NewApp(handler MessageHandler, recorder audit.Recorder, cfg *config.App, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return c.Status(status).JSON(errorBody{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	if cfg.RateLimit != nil && cfg.RateLimit.MaxRequests > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit.MaxRequests,
			Expiration: cfg.RateLimit.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		}))
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/webhook", WebhookHandler(handler, recorder, logger))

	return app
}

// WebhookHandler returns the fiber handler for inbound chat updates.
func WebhookHandler(handler MessageHandler, recorder audit.Recorder, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var update Update
		if err := c.BodyParser(&update); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "malformed update")
		}
		if err := validate.Struct(&update); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "incomplete update")
		}

		msg := update.Message
		text := msg.Text
		if strings.TrimSpace(text) == "" {
			// The transport saw content it could not render as text.
			text = bot.NonTextInput
		}

		user := dialog.User{
			ID:        msg.From.ID,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
			Username:  msg.From.Username,
		}

		response := handler.Handle(c.Context(), user, text)

		if err := recorder.Record(c.Context(), audit.Record{
			CreatedAt: time.Now(),
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Username:  user.Username,
			Request:   text,
			Response:  response,
		}); err != nil {
			// The reply still goes out; auditing is best effort here.
			logger.Warn("audit record not written", "user", strconv.FormatInt(user.ID, 10), "error", err)
		}

		return c.JSON(Reply{Text: response})
	}
}
