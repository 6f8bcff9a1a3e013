package http

import (
	"github.com/gofiber/fiber/v2"

	in "guard_server/core/port/in"
	"guard_server/infra/middleware"
)

// ChannelHandler handles HTTP requests for the operator's channel
type ChannelHandler struct {
	service  in.ChannelService
	pageSize int
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(service in.ChannelService, pageSize int) *ChannelHandler {
	return &ChannelHandler{service: service, pageSize: pageSize}
}

// Register registers channel routes
func (h *ChannelHandler) Register(router fiber.Router) {
	channel := router.Group("/channel")
	channel.Get("/videos", h.ListVideos)
}

// ListVideos lists the operator's channel uploads, newest first
// @Summary List channel uploads
// @Tags Channel
// @Produce json
// @Param page_token query string false "Page token from a previous response"
// @Param limit query int false "Page size"
// @Success 200 {object} domain.VideoPage
// @Router /api/v1/channel/videos [get]
func (h *ChannelHandler) ListVideos(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.pageSize)
	if limit <= 0 {
		limit = h.pageSize
	}
	if limit > 50 {
		limit = 50
	}

	page, err := h.service.ListUploads(c.Context(), middleware.AccessToken(c), c.Query("page_token"), limit)
	if err != nil {
		return err
	}
	return SuccessResponse(c, page)
}
