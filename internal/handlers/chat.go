package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dogusotomat/dogi-support-backend/internal/services"
)

// ChatHandler handles the support widget's chat requests
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest is one incoming chat turn
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ClearRequest resets a session's per-case state
type ClearRequest struct {
	SessionID       string `json:"session_id"`
	PurgeTranscript *bool  `json:"purge_transcript,omitempty"`
}

// HandleMessage processes one chat turn
func (h *ChatHandler) HandleMessage(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chat payload",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	log.Printf("💬 Chat message (session=%s): %s", req.SessionID, req.Message)

	result := h.chatService.GetResponse(req.SessionID, req.Message)
	return c.JSON(result)
}

// HandleStatus returns the widget status badge data
func (h *ChatHandler) HandleStatus(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	return c.JSON(h.chatService.GetStatus(sessionID))
}

// HandleClear resets a session
func (h *ChatHandler) HandleClear(c *fiber.Ctx) error {
	var req ClearRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid clear payload",
		})
	}

	if err := h.chatService.ClearSession(req.SessionID, req.PurgeTranscript); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear session",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleTranscript returns the session transcript for replay
func (h *ChatHandler) HandleTranscript(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	messages, err := h.chatService.GetTranscript(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"messages":   messages,
	})
}
