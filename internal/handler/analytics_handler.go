package handler

import (
	"net/http"
	"time"

	"linkhop/internal/middleware"
	"linkhop/internal/response"
	"linkhop/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultAnalyticsWindow = 30 * 24 * time.Hour

type AnalyticsHandler struct {
	service *service.AnalyticsService
	now     func() time.Time
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		now:     time.Now,
	}
}

// Analytics godoc
//
//	@Summary		Click analytics
//	@Description	Totals, deltas against the preceding window of equal length and chart series. Defaults to the last 30 days, at most 366 days
//	@Tags			analytics
//	@Produce		json
//	@Security		BearerAuth
//	@Param			from	query		string	false	"Window start, RFC3339"
//	@Param			to		query		string	false	"Window end, RFC3339"
//	@Success		200		{object}	service.Snapshot
//	@Failure		400		{object}	response.ErrorResponse
//	@Router			/api/v1/analytics [get]
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	to := h.now()
	from := to.Add(-defaultAnalyticsWindow)

	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "to must be an RFC3339 timestamp"})
			return
		}
		to = t
		if c.Query("from") == "" {
			from = to.Add(-defaultAnalyticsWindow)
		}
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "from must be an RFC3339 timestamp"})
			return
		}
		from = t
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "from must not be after to"})
		return
	}
	if to.Sub(from) > service.MaxAnalyticsWindow {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "window must not exceed 366 days"})
		return
	}

	c.JSON(http.StatusOK, h.service.Analyze(c.Request.Context(), middleware.CurrentUser(c), from, to))
}
