package dto

import (
	"turftrack/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateListingDTO struct {
	EquipmentID uint64       `json:"equipment_id" validate:"required,gt=0"`
	Price       float64      `json:"price" validate:"required,gt=0"`
	Description string       `json:"description" validate:"required"`
	ContactInfo string       `json:"contact_info" validate:"required"`
	Location    string       `json:"location" validate:"required"`
	Latitude    null.Float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   null.Float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type UpdateListingStatusDTO struct {
	Status string `json:"status" validate:"required,listing_status"`
}

// BrowseQueryDTO carries the marketplace browse parameters. Origin and
// MaxDistance are optional; the radius filter only applies when both are set.
type BrowseQueryDTO struct {
	Search      string
	Lat         null.Float64
	Lng         null.Float64
	MaxDistance null.Float64
}

// ListingWithEquipmentDTO is one marketplace row: the listing, its equipment,
// and the distance from the caller's origin in miles. Distance stays null
// when either side lacks coordinates; it is never zero-by-default.
type ListingWithEquipmentDTO struct {
	entities.Listing
	Equipment entities.Equipment `json:"equipment"`
	Distance  null.Float64       `json:"distance,omitempty"`
}

type ListingDetailDTO struct {
	entities.Listing
	Equipment       entities.Equipment        `json:"equipment"`
	MaintenanceLogs []entities.MaintenanceLog `json:"maintenance_logs"`
}
