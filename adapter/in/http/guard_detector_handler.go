package http

import (
	"github.com/gofiber/fiber/v2"

	in "guard_server/core/port/in"
	"guard_server/pkg/apperr"
)

// DetectorHandler handles HTTP requests for ad-hoc text analysis
type DetectorHandler struct {
	service in.DetectorService
}

// NewDetectorHandler creates a new DetectorHandler
func NewDetectorHandler(service in.DetectorService) *DetectorHandler {
	return &DetectorHandler{service: service}
}

// Register registers detector routes
func (h *DetectorHandler) Register(router fiber.Router) {
	detector := router.Group("/detector")
	detector.Post("/analyze", h.Analyze)
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// Analyze classifies a single piece of text
// @Summary Analyze text for gambling spam
// @Tags Detector
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "Text to analyze"
// @Success 200 {object} domain.Classification
// @Router /api/v1/detector/analyze [post]
func (h *DetectorHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	result, err := h.service.Analyze(c.Context(), req.Text)
	if err != nil {
		return err
	}
	return SuccessResponse(c, result)
}
