package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateMaintenanceLogDTO struct {
	EquipmentID    uint64       `json:"equipment_id" validate:"required,gt=0"`
	Date           string       `json:"date" validate:"required,datetime=2006-01-02"`
	Type           string       `json:"type" validate:"required"`
	Description    string       `json:"description" validate:"required"`
	Cost           float64      `json:"cost" validate:"gte=0"`
	HoursAtService null.Float64 `json:"hours_at_service" validate:"omitempty,gte=0"`
	PerformedBy    null.String  `json:"performed_by" validate:"omitempty"`
}

type MaintenanceLogFilterDTO struct {
	EquipmentID uint64
}
