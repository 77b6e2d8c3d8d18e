package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tracks-backend-go/internal/service"
	"github.com/jengzang/tracks-backend-go/pkg/response"
)

// respondError maps a service error to its HTTP response. Errors without
// a client-facing cause become a 500 with the generic message.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrPlaceNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidThreshold),
		errors.Is(err, service.ErrInvalidDay),
		errors.Is(err, service.ErrInvalidPlace),
		errors.Is(err, service.ErrInvalidActivity):
		response.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c, message)
	}
}
