package http

import (
	"github.com/gofiber/fiber/v2"

	in "guard_server/core/port/in"
	"guard_server/infra/middleware"
	"guard_server/pkg/apperr"
)

// TriageHandler handles HTTP requests for triage session operations
type TriageHandler struct {
	service in.TriageService
}

// NewTriageHandler creates a new TriageHandler
func NewTriageHandler(service in.TriageService) *TriageHandler {
	return &TriageHandler{service: service}
}

// Register registers triage routes
func (h *TriageHandler) Register(router fiber.Router) {
	sessions := router.Group("/triage/sessions")

	sessions.Post("/", h.StartSession)
	sessions.Get("/:id", h.GetSession)
	sessions.Delete("/:id", h.EndSession)

	sessions.Post("/:id/scan", h.Scan)

	sessions.Post("/:id/comments/:threadID/approve", h.Approve)
	sessions.Post("/:id/comments/:threadID/reject", h.Reject)
	sessions.Post("/:id/spam/reject-all", h.RejectAll)
}

type startSessionRequest struct {
	VideoID string `json:"video_id"`
}

// StartSession loads a video's comments and opens a triage session
// @Summary Start a triage session for a video
// @Tags Triage
// @Accept json
// @Produce json
// @Param request body startSessionRequest true "Target video"
// @Success 201 {object} domain.SessionSnapshot
// @Router /api/v1/triage/sessions [post]
func (h *TriageHandler) StartSession(c *fiber.Ctx) error {
	var req startSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	snap, err := h.service.StartSession(c.Context(), middleware.AccessToken(c), req.VideoID)
	if err != nil {
		return err
	}

	c.Status(fiber.StatusCreated)
	return SuccessResponse(c, snap)
}

// GetSession returns the current state of a triage session
// @Summary Get a triage session
// @Tags Triage
// @Produce json
// @Success 200 {object} domain.SessionSnapshot
// @Router /api/v1/triage/sessions/{id} [get]
func (h *TriageHandler) GetSession(c *fiber.Ctx) error {
	snap, err := h.service.GetSession(c.Params("id"))
	if err != nil {
		return err
	}
	return SuccessResponse(c, snap)
}

// EndSession discards a triage session and all in-memory state
// @Summary End a triage session
// @Tags Triage
// @Router /api/v1/triage/sessions/{id} [delete]
func (h *TriageHandler) EndSession(c *fiber.Ctx) error {
	if err := h.service.EndSession(c.Params("id")); err != nil {
		return err
	}
	return SuccessResponse(c, fiber.Map{"ended": true})
}

// Scan classifies the session's comments and partitions them into tiers
// @Summary Scan session comments
// @Tags Triage
// @Produce json
// @Success 200 {object} domain.SessionSnapshot
// @Router /api/v1/triage/sessions/{id}/scan [post]
func (h *TriageHandler) Scan(c *fiber.Ctx) error {
	snap, err := h.service.Scan(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return SuccessResponse(c, snap)
}

// Approve moves a review-tier comment to the safe tier
// @Summary Approve a comment under review
// @Tags Triage
// @Produce json
// @Success 200 {object} domain.SessionSnapshot
// @Router /api/v1/triage/sessions/{id}/comments/{threadID}/approve [post]
func (h *TriageHandler) Approve(c *fiber.Ctx) error {
	snap, err := h.service.Approve(c.Params("id"), c.Params("threadID"))
	if err != nil {
		return err
	}
	return SuccessResponse(c, snap)
}

// Reject rejects a review-tier comment on the platform and moves it to spam.
// A moderation failure is reported through the session's last outcome, not
// as an HTTP error.
// @Summary Reject a comment under review
// @Tags Triage
// @Produce json
// @Success 200 {object} domain.SessionSnapshot
// @Router /api/v1/triage/sessions/{id}/comments/{threadID}/reject [post]
func (h *TriageHandler) Reject(c *fiber.Ctx) error {
	snap, err := h.service.Reject(c.Context(), c.Params("id"), c.Params("threadID"))
	if err != nil {
		return err
	}
	return SuccessResponse(c, snap)
}

// RejectAll rejects every spam-tier comment on the platform
// @Summary Reject all spam-tier comments
// @Tags Triage
// @Produce json
// @Router /api/v1/triage/sessions/{id}/spam/reject-all [post]
func (h *TriageHandler) RejectAll(c *fiber.Ctx) error {
	summary, snap, err := h.service.RejectAll(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return SuccessResponse(c, fiber.Map{
		"summary": summary,
		"session": snap,
	})
}
