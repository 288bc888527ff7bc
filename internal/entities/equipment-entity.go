package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusRetired     = "retired"
)

type Equipment struct {
	ID           uint64      `json:"id"`
	UserID       uint64      `json:"user_id"`
	Name         string      `json:"name"`
	Make         string      `json:"make"`
	Model        string      `json:"model"`
	Year         int         `json:"year"`
	SerialNumber null.String `json:"serial_number"`
	CurrentHours float64     `json:"current_hours"`
	Status       string      `json:"status"`
	Notes        null.String `json:"notes"`
	ImageURL     null.String `json:"image_url"`
	CreatedAt    time.Time   `json:"created_at"`
}
