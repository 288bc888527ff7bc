package seeders

var equipmentData = []struct {
	Name         string
	Make         string
	Model        string
	Year         int
	CurrentHours float64
	SerialNumber string
	Status       string
	Notes        string
}{
	{
		Name:         "Fairway Master 5000",
		Make:         "Toro",
		Model:        "Reelmaster 5010-H",
		Year:         2022,
		CurrentHours: 450.5,
		SerialNumber: "TR-5010-22-001",
		Status:       "active",
		Notes:        "Primary fairway mower. Check reels weekly.",
	},
	{
		Name:         "Beverage Cart #2",
		Make:         "Club Car",
		Model:        "Carryall 500",
		Year:         2020,
		CurrentHours: 1200.0,
		SerialNumber: "CC-500-20-882",
		Status:       "active",
		Notes:        "New tires installed Jan 2024",
	},
	{
		Name:         "Utility Tractor",
		Make:         "John Deere",
		Model:        "4066R",
		Year:         2019,
		CurrentHours: 2150.2,
		SerialNumber: "JD-4066-19-445",
		Status:       "maintenance",
		Notes:        "Awaiting hydraulic pump part",
	},
}

var maintenanceLogData = []struct {
	EquipmentIndex int
	Date           string
	Type           string
	Description    string
	Cost           float64
	HoursAtService float64
	PerformedBy    string
}{
	{
		EquipmentIndex: 0,
		Date:           "2024-01-15",
		Type:           "Routine",
		Description:    "Oil change and filter replacement",
		Cost:           85.50,
		HoursAtService: 430.0,
		PerformedBy:    "Mike T.",
	},
	{
		EquipmentIndex: 0,
		Date:           "2024-02-01",
		Type:           "Inspection",
		Description:    "Reel sharpening and height adjustment",
		Cost:           150.00,
		HoursAtService: 445.0,
		PerformedBy:    "External Service",
	},
	{
		EquipmentIndex: 2,
		Date:           "2024-02-10",
		Type:           "Repair",
		Description:    "Hydraulic leak diagnosis - ordered pump",
		Cost:           0.00,
		HoursAtService: 2150.2,
		PerformedBy:    "Mike T.",
	},
}
