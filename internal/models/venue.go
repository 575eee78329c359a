package models

// VenueSnapshot is the caller-supplied view of a venue at a point in time.
type VenueSnapshot struct {
	Name         string  `json:"name"`
	ContactName  string  `json:"contactName,omitempty"`
	ContactEmail string  `json:"contactEmail,omitempty"`
	ContactPhone string  `json:"contactPhone,omitempty"`
	Fee          float64 `json:"fee"`
	ExpiryDate   string  `json:"expiryDate,omitempty"`
	Capacity     int     `json:"capacity"`
	AddressLine1 string  `json:"addressLine1,omitempty"`
	AddressLine2 string  `json:"addressLine2,omitempty"`
	City         string  `json:"city,omitempty"`
	Postcode     string  `json:"postcode,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Status       string  `json:"status,omitempty"`
}
