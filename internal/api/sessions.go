package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/models"
)

// SessionHandler serves the session audit logging endpoints.
type SessionHandler struct {
	logger SessionLogger
	log    *logrus.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(logger SessionLogger, log *logrus.Logger) *SessionHandler {
	return &SessionHandler{logger: logger, log: log}
}

type createdRequest struct {
	Snapshot models.SessionSnapshot `json:"snapshot"`
	Actor    string                 `json:"actor"`
}

// Created handles POST /api/v1/sessions/:id/created.
func (h *SessionHandler) Created(c *gin.Context) {
	var req createdRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	rec := h.logger.LogCreated(c.Request.Context(), c.Param("id"), req.Snapshot, req.Actor)

	c.JSON(http.StatusCreated, rec)
}

type updatedRequest struct {
	Previous models.SessionSnapshot `json:"previous"`
	Next     models.SessionSnapshot `json:"next"`
	Actor    string                 `json:"actor"`
}

// Updated handles POST /api/v1/sessions/:id/updated. It diffs the two
// snapshots and responds with the changed dimensions and the records
// created for them.
func (h *SessionHandler) Updated(c *gin.Context) {
	var req updatedRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	changes := h.logger.LogUpdated(c.Request.Context(), c.Param("id"), req.Previous, req.Next, req.Actor)

	c.JSON(http.StatusCreated, changes)
}

type cancelledRequest struct {
	Reason string `json:"reason"`
	Actor  string `json:"actor"`
}

// Cancelled handles POST /api/v1/sessions/:id/cancelled.
func (h *SessionHandler) Cancelled(c *gin.Context) {
	var req cancelledRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	rec := h.logger.LogCancelled(c.Request.Context(), c.Param("id"), req.Reason, req.Actor)

	c.JSON(http.StatusCreated, rec)
}

type bookingRequest struct {
	Booking models.BookingInfo `json:"booking"`
	Actor   string             `json:"actor"`
}

// BookingAdded handles POST /api/v1/sessions/:id/bookings.
func (h *SessionHandler) BookingAdded(c *gin.Context) {
	var req bookingRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	rec := h.logger.LogBookingAdded(c.Request.Context(), c.Param("id"), req.Booking, req.Actor)

	c.JSON(http.StatusCreated, rec)
}

// BookingCancelled handles POST /api/v1/sessions/:id/booking-cancellations.
func (h *SessionHandler) BookingCancelled(c *gin.Context) {
	var req bookingRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	rec := h.logger.LogBookingCancelled(c.Request.Context(), c.Param("id"), req.Booking, req.Actor)

	c.JSON(http.StatusCreated, rec)
}

type transferRequest struct {
	Transfer models.TransferInfo `json:"transfer"`
	Actor    string              `json:"actor"`
}

// AttendeeTransferred handles POST /api/v1/sessions/:id/transfers.
func (h *SessionHandler) AttendeeTransferred(c *gin.Context) {
	var req transferRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	rec := h.logger.LogAttendeeTransferred(c.Request.Context(), c.Param("id"), req.Transfer, req.Actor)

	c.JSON(http.StatusCreated, rec)
}

type zoomLinkRequest struct {
	Link  string `json:"link"`
	IsNew bool   `json:"isNew"`
	Actor string `json:"actor"`
}

// ZoomLinkChanged handles POST /api/v1/sessions/:id/zoom-link.
func (h *SessionHandler) ZoomLinkChanged(c *gin.Context) {
	var req zoomLinkRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	rec := h.logger.LogZoomLinkChanged(c.Request.Context(), c.Param("id"), req.Link, req.IsNew, req.Actor)

	c.JSON(http.StatusCreated, rec)
}

type noteRequest struct {
	Note  string `json:"note"`
	Actor string `json:"actor"`
}

// NoteAdded handles POST /api/v1/sessions/:id/notes.
func (h *SessionHandler) NoteAdded(c *gin.Context) {
	var req noteRequest
	if !bindLogRequest(c, &req, &req.Actor) {
		return
	}

	rec := h.logger.LogNoteAdded(c.Request.Context(), c.Param("id"), req.Note, req.Actor)

	c.JSON(http.StatusCreated, rec)
}

// bindLogRequest decodes the request body and enforces the two fields
// every logging endpoint requires: a subject id path param and an actor.
func bindLogRequest(c *gin.Context, req any, actor *string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body: "+err.Error())

		return false
	}

	if c.Param("id") == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, models.ErrMissingSubjectID.Error())

		return false
	}

	if *actor == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, models.ErrMissingActor.Error())

		return false
	}

	return true
}
