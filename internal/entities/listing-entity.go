package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	ListingStatusActive  = "active"
	ListingStatusSold    = "sold"
	ListingStatusRemoved = "removed"
)

// Listing is a marketplace offer to sell one piece of equipment. At most one
// active listing may exist per equipment at a time.
type Listing struct {
	ID          uint64       `json:"id"`
	EquipmentID uint64       `json:"equipment_id"`
	SellerID    uint64       `json:"seller_id"`
	SellerName  string       `json:"seller_name"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	ContactInfo string       `json:"contact_info"`
	Location    string       `json:"location"`
	Latitude    null.Float64 `json:"latitude"`
	Longitude   null.Float64 `json:"longitude"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}

// HasCoordinates reports whether the seller pinned the listing on the map.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude.Valid && l.Longitude.Valid
}
