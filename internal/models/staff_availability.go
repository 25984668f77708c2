package models

// StaffAvailability is a weekly recurring window during which one staff
// member can be booked. Times are local wall-clock "HH:MM" strings in the
// shop's timezone; day_of_week uses 0=Sunday .. 6=Saturday.
type StaffAvailability struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"uniqueIndex:idx_staff_day" json:"staff_id"`

	DayOfWeek int `gorm:"uniqueIndex:idx_staff_day" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
}
