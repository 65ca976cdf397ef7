package handler

import (
	"net/http"

	"linkhop/internal/response"
	"linkhop/internal/service"

	"github.com/gin-gonic/gin"
)

type RedirectHandler struct {
	service *service.RedirectService
}

func NewRedirectHandler(service *service.RedirectService) *RedirectHandler {
	return &RedirectHandler{
		service: service,
	}
}

// Direct godoc
//
//	@Summary	Follow a direct short link
//	@Tags		redirect
//	@Param		slug	path	string	true	"Slug"
//	@Success	302
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/r/{slug} [get]
func (h *RedirectHandler) Direct(c *gin.Context) {
	h.resolve(c, "", c.Param("slug"))
}

// Domain godoc
//
//	@Summary	Follow a domain short link
//	@Tags		redirect
//	@Param		domain	path	string	true	"Domain"
//	@Param		slug	path	string	true	"Slug"
//	@Success	302
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/{domain}/{slug} [get]
func (h *RedirectHandler) Domain(c *gin.Context) {
	h.resolve(c, c.Param("domain"), c.Param("slug"))
}

func (h *RedirectHandler) resolve(c *gin.Context, domain, slug string) {
	meta := service.RequestMetaFromHeaders(c.Request.Header)
	url, ok := h.service.Resolve(c.Request.Context(), slug, domain, meta)
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Link not found"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, url)
}
