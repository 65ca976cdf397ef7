package handler

import (
	"net/http"

	"linkhop/internal/middleware"
	"linkhop/internal/response"
	"linkhop/internal/service"

	"github.com/gin-gonic/gin"
)

type DomainHandler struct {
	service *service.DomainService
}

func NewDomainHandler(service *service.DomainService) *DomainHandler {
	return &DomainHandler{
		service: service,
	}
}

// ListDomains godoc
//
//	@Summary		List domains
//	@Tags			domains
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.DomainsResponse
//	@Router			/api/v1/domains [get]
func (h *DomainHandler) ListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, response.DomainsResponse{Domains: h.service.List(middleware.CurrentUser(c))})
}

type AddDomainRequest struct {
	Domain string `json:"domain" binding:"required"`
}

// AddDomain godoc
//
//	@Summary		Add a domain
//	@Tags			domains
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			domain	body		AddDomainRequest	true	"Letters, numbers and hyphens"
//	@Success		201		{object}	response.DomainsResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		409		{object}	response.ErrorResponse	"Domain already in use"
//	@Router			/api/v1/domains [post]
func (h *DomainHandler) AddDomain(c *gin.Context) {
	var req AddDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, service.ErrValidation)
		return
	}
	user := middleware.CurrentUser(c)
	if _, err := h.service.Add(c.Request.Context(), user, req.Domain); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.DomainsResponse{Domains: h.service.List(user)})
}

type RenameDomainRequest struct {
	Domain string `json:"domain" binding:"required"`
}

// RenameDomain godoc
//
//	@Summary		Rename a domain
//	@Description	Renames the domain and moves every link under it to the new name
//	@Tags			domains
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name	path		string				true	"Current domain"
//	@Param			domain	body		RenameDomainRequest	true	"New name"
//	@Success		200		{object}	response.DomainsResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		403		{object}	response.ErrorResponse	"Domain not owned"
//	@Failure		409		{object}	response.ErrorResponse	"Domain already in use"
//	@Router			/api/v1/domains/{name} [put]
func (h *DomainHandler) RenameDomain(c *gin.Context) {
	var req RenameDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, service.ErrValidation)
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.service.Rename(c.Request.Context(), user, c.Param("name"), req.Domain); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DomainsResponse{Domains: h.service.List(user)})
}
