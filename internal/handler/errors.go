package handler

import (
	"errors"
	"net/http"

	"linkhop/internal/response"
	"linkhop/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses. Unknown errors become a generic 500.
func writeError(c *gin.Context, err error) {
	var limitErr *service.LimitError
	switch {
	case errors.As(err, &limitErr):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: limitErr.Error()})
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrInvalidDomain),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrIncorrectPassword),
		errors.Is(err, service.ErrInvalidPlan):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDomainAccess):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrDomainTaken),
		errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: service.ErrInternal.Error()})
	}
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Validation error"})
}
