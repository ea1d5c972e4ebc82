package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

// fail maps service sentinel errors onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrTableNumberTaken):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
