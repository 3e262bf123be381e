package dashboard

// Stats is the aggregate snapshot the ICU wallboard renders. It is
// recomputed periodically and cached; GeneratedAt tells the client how
// fresh the numbers are.
type Stats struct {
	Beds                BedStats         `json:"beds"`
	StaffOnDuty         map[string]int64 `json:"staff_on_duty"`
	PatientsBySeverity  map[string]int64 `json:"patients_by_severity"`
	EquipmentByStatus   map[string]int64 `json:"equipment_by_status"`
	AdmissionsLast7Days map[string]int64 `json:"admissions_last_7_days"`
	GeneratedAt         string           `json:"generated_at"`
}

type BedStats struct {
	Total        int64   `json:"total"`
	Occupied     int64   `json:"occupied"`
	Available    int64   `json:"available"`
	Maintenance  int64   `json:"maintenance"`
	OccupancyPct float64 `json:"occupancy_pct"`
}
