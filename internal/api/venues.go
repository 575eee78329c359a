package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/models"
)

// VenueHandler serves the venue diff-and-log endpoint.
type VenueHandler struct {
	logger VenueLogger
	log    *logrus.Logger
}

// NewVenueHandler creates a VenueHandler.
func NewVenueHandler(logger VenueLogger, log *logrus.Logger) *VenueHandler {
	return &VenueHandler{logger: logger, log: log}
}

type venueChangesRequest struct {
	Previous models.VenueSnapshot `json:"previous"`
	Next     models.VenueSnapshot `json:"next"`
	Actor    string               `json:"actor"`
}

// Changes handles POST /api/v1/venues/:id/changes. It diffs the two venue
// snapshots, persists the resulting records, and returns them.
func (h *VenueHandler) Changes(c *gin.Context) {
	var req venueChangesRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	records := h.logger.LogChanges(c.Request.Context(), c.Param("id"), req.Previous, req.Next, req.Actor)
	if records == nil {
		records = []models.AuditRecord{}
	}

	c.JSON(http.StatusCreated, gin.H{"records": records})
}
