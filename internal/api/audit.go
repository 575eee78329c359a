package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/audit"
	"github.com/bookinglog/bookinglog/internal/models"
)

// AuditHandler serves the audit history read endpoints.
type AuditHandler struct {
	querier AuditQuerier
	log     *logrus.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(querier AuditQuerier, log *logrus.Logger) *AuditHandler {
	return &AuditHandler{querier: querier, log: log}
}

// Query handles GET /api/v1/audit.
func (h *AuditHandler) Query(c *gin.Context) {
	opts := models.QueryOpts{
		SubjectID:     c.Query("subject_id"),
		ActorContains: c.Query("actor"),
		Limit:         parseInt(c.Query("limit"), 50),
		Offset:        parseOffset(c.Query("offset")),
	}

	if action := c.Query("action"); action != "" {
		a := models.ActionType(action)
		if !a.Valid() {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "unknown action type")
			return
		}
		opts.Action = a
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid from format, use RFC3339")
			return
		}
		opts.From = &t
	}

	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid to format, use RFC3339")
			return
		}
		opts.To = &t
	}

	records, hasMore := h.querier.Query(c.Request.Context(), opts)

	c.JSON(http.StatusOK, gin.H{
		"data":     records,
		"has_more": hasMore,
	})
}

// RecordsFor handles GET /api/v1/audit/:subjectId.
func (h *AuditHandler) RecordsFor(c *gin.Context) {
	subjectID := c.Param("subjectId")
	if subjectID == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, models.ErrMissingSubjectID.Error())
		return
	}

	records := h.querier.RecordsFor(c.Request.Context(), subjectID)

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// summaryResponse decorates the summary with a pre-formatted relative
// label for the newest record. Clients must not cache it; it goes stale.
type summaryResponse struct {
	models.Summary
	NewestRelative string `json:"newestRelative,omitempty"`
}

// Summary handles GET /api/v1/audit/:subjectId/summary.
func (h *AuditHandler) Summary(c *gin.Context) {
	subjectID := c.Param("subjectId")
	if subjectID == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, models.ErrMissingSubjectID.Error())
		return
	}

	summary := h.querier.Summarize(c.Request.Context(), subjectID)

	resp := summaryResponse{Summary: summary}
	if summary.NewestTimestamp != nil {
		resp.NewestRelative = audit.FormatRelative(*summary.NewestTimestamp)
	}

	c.JSON(http.StatusOK, resp)
}
