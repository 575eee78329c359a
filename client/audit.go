package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// AuditService reads audit history.
type AuditService struct {
	c *Client
}

// queryResponse wraps a record page.
type queryResponse struct {
	Data    []AuditRecord `json:"data"`
	HasMore bool          `json:"has_more"`
}

// Query returns audit records matching the given filters, newest first,
// along with a flag indicating whether more pages exist.
func (s *AuditService) Query(ctx context.Context, opts AuditQueryOptions) ([]AuditRecord, bool, error) {
	params := url.Values{}
	if opts.SubjectID != "" {
		params.Set("subject_id", opts.SubjectID)
	}
	if opts.Action != "" {
		params.Set("action", opts.Action)
	}
	if opts.Actor != "" {
		params.Set("actor", opts.Actor)
	}
	if opts.From != nil {
		params.Set("from", opts.From.Format(time.RFC3339))
	}
	if opts.To != nil {
		params.Set("to", opts.To.Format(time.RFC3339))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}

	var resp queryResponse
	if err := s.c.get(ctx, "/api/v1/audit", params, &resp); err != nil {
		return nil, false, err
	}

	return resp.Data, resp.HasMore, nil
}

// RecordsFor returns the full history for one subject, newest first.
func (s *AuditService) RecordsFor(ctx context.Context, subjectID string) ([]AuditRecord, error) {
	var resp struct {
		Data []AuditRecord `json:"data"`
	}
	path := fmt.Sprintf("/api/v1/audit/%s", url.PathEscape(subjectID))
	if err := s.c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Summary returns the aggregated history summary for one subject.
func (s *AuditService) Summary(ctx context.Context, subjectID string) (*Summary, error) {
	var resp Summary
	path := fmt.Sprintf("/api/v1/audit/%s/summary", url.PathEscape(subjectID))
	if err := s.c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
