package models

import "time"

type Reservation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ProfileID uint          `gorm:"index" json:"profile_id"`
	Profile   BarberProfile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StaffID uint  `gorm:"index:idx_res_staff_date" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerNote  string `gorm:"size:255" json:"customer_note"`

	// Naive shop-local date and wall-clock times. "HH:MM" compares
	// lexicographically, so overlap predicates stay string comparisons.
	ReservationDate string `gorm:"size:10;index:idx_res_staff_date" json:"reservation_date"`
	StartTime       string `gorm:"size:5" json:"start_time"`
	EndTime         string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
