package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"vaccine-assistant/internal/actions"
	apperrors "vaccine-assistant/internal/common/errors"
	"vaccine-assistant/internal/common/metrics"
	"vaccine-assistant/internal/conversation"
	"vaccine-assistant/internal/models"
)

const checkTimeout = 2 * time.Second

// webhookRequest is the action call of a Rasa-style dialogue manager.
type webhookRequest struct {
	NextAction string `json:"next_action"`
	SenderID   string `json:"sender_id"`
	Tracker    struct {
		SenderID      string                 `json:"sender_id"`
		Slots         map[string]interface{} `json:"slots"`
		LatestMessage models.Message         `json:"latest_message"`
	} `json:"tracker"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": s.deps.Version,
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (s *Server) ready(c *fiber.Ctx) error {
	checks := make(map[string]string, len(s.deps.Checks))
	ready := true
	for name, check := range s.deps.Checks {
		ctx, cancel := context.WithTimeout(c.UserContext(), checkTimeout)
		err := check(ctx)
		cancel()
		if err != nil {
			ready = false
			checks[name] = err.Error()
			s.log.Warn("readiness check failed", map[string]interface{}{"check": name, "error": err.Error()})
			continue
		}
		checks[name] = "ok"
	}

	body := fiber.Map{"status": "ready", "checks": checks, "time": time.Now().Format(time.RFC3339)}
	if !ready {
		body["status"] = "not_ready"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.JSON(body)
}

func (s *Server) webhook(c *fiber.Ctx) error {
	var req webhookRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.NextAction == "" {
		return badRequest(c, "next_action is required")
	}
	metrics.TurnsHandled.WithLabelValues("webhook").Inc()

	sender := req.SenderID
	if sender == "" {
		sender = req.Tracker.SenderID
	}
	turn := &actions.Turn{
		SenderID: sender,
		Slots:    models.SlotsFromMap(req.Tracker.Slots),
		Message:  req.Tracker.LatestMessage,
	}

	result, err := s.deps.Dispatcher.Dispatch(c.UserContext(), req.NextAction, turn)
	if errors.Is(err, actions.ErrActionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":       fmt.Sprintf("No registered action found for name '%s'.", req.NextAction),
			"action_name": req.NextAction,
		})
	}
	if err != nil {
		return s.internalError(c, "webhook", err)
	}
	return c.JSON(result)
}

type catalogEntry struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Category    string   `json:"category"`
	Intents     []string `json:"intents"`
	Form        string   `json:"form,omitempty"`
	Registered  bool     `json:"registered"`
}

func (s *Server) listActions(c *fiber.Ctx) error {
	if s.deps.Catalog == nil {
		return c.JSON(fiber.Map{"actions": []catalogEntry{}})
	}
	entries := make([]catalogEntry, 0, len(s.deps.Catalog.Actions))
	for _, a := range s.deps.Catalog.Actions {
		entries = append(entries, catalogEntry{
			ID:          a.ID,
			DisplayName: a.DisplayName,
			Category:    a.Category,
			Intents:     a.Intents,
			Form:        a.Form,
			Registered:  s.deps.Dispatcher != nil && s.deps.Dispatcher.Has(a.ID),
		})
	}
	return c.JSON(fiber.Map{
		"version": s.deps.Catalog.Version,
		"actions": entries,
	})
}

func (s *Server) postMessage(c *fiber.Ctx) error {
	var in conversation.Input
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(in.Text) == "" && in.Intent == "" {
		return badRequest(c, "text or intent is required")
	}

	reply, err := s.deps.Conversations.Handle(c.UserContext(), c.Params("sender"), in)
	if err != nil {
		return s.internalError(c, "conversation", err)
	}
	return c.JSON(reply)
}

func (s *Server) getSlots(c *fiber.Ctx) error {
	sender := c.Params("sender")
	slots, err := s.deps.Conversations.Slots(c.UserContext(), sender)
	if err != nil {
		return s.storeError(c, err)
	}
	return c.JSON(fiber.Map{"sender_id": sender, "slots": slots.ToMap()})
}

func (s *Server) deleteSlots(c *fiber.Ctx) error {
	if err := s.deps.Conversations.Reset(c.UserContext(), c.Params("sender")); err != nil {
		return s.storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (s *Server) storeError(c *fiber.Ctx, err error) error {
	s.log.Error("session store request failed", map[string]interface{}{"path": c.Path(), "error": err.Error()})
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": err.Error(),
		"code":  string(apperrors.CodeOf(err)),
	})
}

func (s *Server) internalError(c *fiber.Ctx, boundary string, err error) error {
	s.log.Error("request failed", map[string]interface{}{"boundary": boundary, "error": err.Error()})
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
		"code":  string(apperrors.CodeOf(err)),
	})
}
