package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tracks-backend-go/internal/service"
	"github.com/jengzang/tracks-backend-go/pkg/response"
)

// PlaceHandler handles HTTP requests for single places
type PlaceHandler struct {
	service *service.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(service *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// GetPlace handles GET /api/v1/places/:id
func (h *PlaceHandler) GetPlace(c *gin.Context) {
	detail, err := h.service.GetPlaceDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get place")
		return
	}

	response.Success(c, detail)
}
