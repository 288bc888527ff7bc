package dto

// DashboardStatsDTO backs the fleet cost dashboard.
type DashboardStatsDTO struct {
	TotalEquipment     int     `json:"total_equipment"`
	ActiveEquipment    int     `json:"active_equipment"`
	InMaintenance      int     `json:"in_maintenance"`
	Retired            int     `json:"retired"`
	TotalFleetHours    float64 `json:"total_fleet_hours"`
	TotalSpend         float64 `json:"total_spend"`
	SpendLast30Days    float64 `json:"spend_last_30_days"`
	MaintenanceEntries int     `json:"maintenance_entries"`
	ActiveListings     int     `json:"active_listings"`
}
