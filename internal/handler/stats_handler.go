package handler

import (
	"net/http"

	"linkhop/internal/middleware"
	"linkhop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatsHandler struct {
	service *service.StatsService
}

func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// LinkStats godoc
//
//	@Summary		Click statistics for a link
//	@Description	Total and unique clicks with country, referrer and device breakdowns plus the latest clicks
//	@Tags			links
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Link ID"
//	@Success		200	{object}	service.LinkStats
//	@Failure		401	{object}	response.ErrorResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/api/v1/links/{id}/stats [get]
func (h *StatsHandler) LinkStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, service.ErrLinkNotFound)
		return
	}
	stats, err := h.service.Stats(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
