package dto

import (
	"turftrack/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required"`
	Make         string      `json:"make" validate:"required"`
	Model        string      `json:"model" validate:"required"`
	Year         int         `json:"year" validate:"required,gte=1900,lte=2100"`
	SerialNumber null.String `json:"serial_number" validate:"omitempty"`
	CurrentHours float64     `json:"current_hours" validate:"gte=0"`
	Status       string      `json:"status" validate:"omitempty,equipment_status"`
	Notes        null.String `json:"notes" validate:"omitempty"`
	ImageURL     null.String `json:"image_url" validate:"omitempty"`
}

type UpdateEquipmentDTO struct {
	Name         *string     `json:"name,omitempty" validate:"omitempty"`
	Make         *string     `json:"make,omitempty" validate:"omitempty"`
	Model        *string     `json:"model,omitempty" validate:"omitempty"`
	Year         *int        `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	SerialNumber null.String `json:"serial_number,omitempty" validate:"omitempty"`
	CurrentHours *float64    `json:"current_hours,omitempty" validate:"omitempty,gte=0"`
	Status       *string     `json:"status,omitempty" validate:"omitempty,equipment_status"`
	Notes        null.String `json:"notes,omitempty" validate:"omitempty"`
	ImageURL     null.String `json:"image_url,omitempty" validate:"omitempty"`
}

type EquipmentDTO struct {
	entities.Equipment
	Logs []entities.MaintenanceLog `json:"logs,omitempty"`
}

type EquipmentFilterDTO struct {
	Search string
	Status string
}
