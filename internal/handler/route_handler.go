package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tracks-backend-go/internal/export"
	"github.com/jengzang/tracks-backend-go/internal/models"
	"github.com/jengzang/tracks-backend-go/internal/service"
	"github.com/jengzang/tracks-backend-go/pkg/response"
)

// Content types of the export endpoints
const (
	ContentTypeGeoJSON = "application/geo+json"
	ContentTypeGPX     = "application/gpx+xml"
)

// RouteHandler handles HTTP requests for drawn routes
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// GetDays handles GET /api/v1/route/days
func (h *RouteHandler) GetDays(c *gin.Context) {
	response.Success(c, h.service.Days())
}

// GetFilters handles GET /api/v1/route/filters
func (h *RouteHandler) GetFilters(c *gin.Context) {
	response.Success(c, h.service.TimeFilters())
}

// GetRoute handles GET /api/v1/route?day=&minStay=
func (h *RouteHandler) GetRoute(c *gin.Context) {
	resp, ok := h.draw(c)
	if !ok {
		return
	}
	response.Success(c, resp)
}

// ExportGeoJSON handles GET /api/v1/route/geojson
func (h *RouteHandler) ExportGeoJSON(c *gin.Context) {
	resp, ok := h.draw(c)
	if !ok {
		return
	}

	data, err := export.MarshalGeoJSON(resp.Route)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c, "Failed to encode GeoJSON")
		return
	}
	c.Data(http.StatusOK, ContentTypeGeoJSON, data)
}

// ExportGPX handles GET /api/v1/route/gpx
func (h *RouteHandler) ExportGPX(c *gin.Context) {
	resp, ok := h.draw(c)
	if !ok {
		return
	}

	name := "route-" + resp.Day
	data, err := export.MarshalGPX(resp.Route, name)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c, "Failed to encode GPX")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".gpx"))
	c.Data(http.StatusOK, ContentTypeGPX, data)
}

// draw binds the route filter and draws the route, writing the error
// response itself when it fails
func (h *RouteHandler) draw(c *gin.Context) (*models.RouteResponse, bool) {
	var filter models.RouteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return nil, false
	}

	q, err := h.service.ParseQuery(filter)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return nil, false
	}

	resp, err := h.service.DrawRoute(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to draw route")
		return nil, false
	}
	return resp, true
}
