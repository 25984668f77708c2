package models

import "time"

// BlockedSlot is a one-off, per-staff time range that cannot be booked
// (holiday, sick leave, walk-in). Same naive local date/time encoding as
// reservations.
type BlockedSlot struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"index:idx_block_staff_date" json:"staff_id"`

	Date      string `gorm:"size:10;index:idx_block_staff_date" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
