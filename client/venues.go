package client

import (
	"context"
	"fmt"
	"net/url"
)

// VenueService logs venue changes.
type VenueService struct {
	c *Client
}

// LogChanges diffs two venue snapshots server-side and records the
// resulting changes. An unchanged pair returns an empty slice.
func (s *VenueService) LogChanges(ctx context.Context, venueID string, previous, next VenueSnapshot, actor string) ([]AuditRecord, error) {
	body := struct {
		Previous VenueSnapshot `json:"previous"`
		Next     VenueSnapshot `json:"next"`
		Actor    string        `json:"actor"`
	}{previous, next, actor}

	var resp struct {
		Records []AuditRecord `json:"records"`
	}
	path := fmt.Sprintf("/api/v1/venues/%s/changes", url.PathEscape(venueID))
	if err := s.c.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}

	return resp.Records, nil
}
