package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceReportRowDTO is one line of the service-history export, a
// maintenance log joined with its machine.
type MaintenanceReportRowDTO struct {
	EquipmentName  string       `json:"equipment_name"`
	EquipmentMake  string       `json:"equipment_make"`
	EquipmentModel string       `json:"equipment_model"`
	Date           time.Time    `json:"date"`
	Type           string       `json:"type"`
	Description    string       `json:"description"`
	Cost           float64      `json:"cost"`
	HoursAtService null.Float64 `json:"hours_at_service"`
	PerformedBy    null.String  `json:"performed_by"`
}

type ReportFilterDTO struct {
	EquipmentID uint64
	DateFrom    *time.Time
	DateTo      *time.Time
}
