package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceLog is immutable once created, except for deletion.
type MaintenanceLog struct {
	ID             uint64       `json:"id"`
	UserID         uint64       `json:"user_id"`
	EquipmentID    uint64       `json:"equipment_id"`
	Date           time.Time    `json:"date"`
	Type           string       `json:"type"`
	Description    string       `json:"description"`
	Cost           float64      `json:"cost"`
	HoursAtService null.Float64 `json:"hours_at_service"`
	PerformedBy    null.String  `json:"performed_by"`
	CreatedAt      time.Time    `json:"created_at"`
}
