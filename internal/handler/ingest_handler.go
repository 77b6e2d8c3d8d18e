package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tracks-backend-go/internal/models"
	"github.com/jengzang/tracks-backend-go/internal/service"
	"github.com/jengzang/tracks-backend-go/pkg/response"
)

// IngestHandler handles uploads of place visits and activity samples
type IngestHandler struct {
	service *service.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service *service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// PostPlaces handles POST /api/v1/places
func (h *IngestHandler) PostPlaces(c *gin.Context) {
	var req models.PlaceBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ids, err := h.service.AddPlaces(c.Request.Context(), req.Places)
	if err != nil {
		respondError(c, err, "Failed to store places")
		return
	}

	response.Created(c, gin.H{
		"ids":   ids,
		"count": len(ids),
	})
}

// PostActivities handles POST /api/v1/activities
func (h *IngestHandler) PostActivities(c *gin.Context) {
	var req models.ActivityBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	n, err := h.service.AddActivities(c.Request.Context(), req.Activities)
	if err != nil {
		respondError(c, err, "Failed to store activities")
		return
	}

	response.Created(c, gin.H{"count": n})
}
