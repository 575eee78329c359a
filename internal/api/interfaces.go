package api

import "github.com/bookinglog/bookinglog/internal/domain"

// SessionLogger defines the session logging operations used by SessionHandler.
type SessionLogger = domain.SessionLogger

// VenueLogger defines the venue diff-and-log operation used by VenueHandler.
type VenueLogger = domain.VenueLogger

// AuditQuerier defines the query operations used by AuditHandler.
type AuditQuerier = domain.AuditQuerier
