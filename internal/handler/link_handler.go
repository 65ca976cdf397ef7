package handler

import (
	"net/http"
	"strconv"

	"linkhop/internal/middleware"
	"linkhop/internal/response"
	"linkhop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LinkHandler struct {
	service *service.LinkService
}

func NewLinkHandler(service *service.LinkService) *LinkHandler {
	return &LinkHandler{
		service: service,
	}
}

type CreateLinkRequest struct {
	OriginalURL string `json:"original_url" binding:"required"`
	CustomSlug  string `json:"custom_slug"`
	Domain      string `json:"domain"`
}

// CreateLink godoc
//
//	@Summary		Create a short link
//	@Description	Without custom_slug a 6 character slug is generated. domain must be one of the user's domains
//	@Tags			links
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			link	body		CreateLinkRequest	true	"Link data"
//	@Success		201		{object}	response.LinkResponse
//	@Failure		400		{object}	response.ErrorResponse	"Invalid url or slug"
//	@Failure		403		{object}	response.ErrorResponse	"Domain not owned or plan limit reached"
//	@Failure		409		{object}	response.ErrorResponse	"Slug already taken"
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/api/v1/links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, service.ErrInvalidURL)
		return
	}

	link, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c), req.OriginalURL, req.CustomSlug, req.Domain)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewLinkResponse(link, h.service.ShortURL(link)))
}

// ListLinks godoc
//
//	@Summary		List links
//	@Tags			links
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		response.LinkResponse
//	@Failure		401	{object}	response.ErrorResponse
//	@Router			/api/v1/links [get]
func (h *LinkHandler) ListLinks(c *gin.Context) {
	links, err := h.service.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]response.LinkResponse, 0, len(links))
	for i := range links {
		resp = append(resp, response.NewLinkResponse(&links[i], h.service.ShortURL(&links[i])))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteLink godoc
//
//	@Summary		Delete a link
//	@Description	Removes the link and its click history
//	@Tags			links
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Link ID"
//	@Success		204
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/api/v1/links/{id} [delete]
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, service.ErrLinkNotFound)
		return
	}
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QRCode godoc
//
//	@Summary		QR code for a link
//	@Tags			links
//	@Produce		png
//	@Security		BearerAuth
//	@Param			id		path	string	true	"Link ID"
//	@Param			size	query	int		false	"Image size in pixels (64-1024)"	default(256)
//	@Success		200
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/api/v1/links/{id}/qr [get]
func (h *LinkHandler) QRCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, service.ErrLinkNotFound)
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(service.DefaultQRSize)))
	if err != nil {
		badRequest(c)
		return
	}

	png, err := h.service.QRCode(c.Request.Context(), middleware.CurrentUser(c), id, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
