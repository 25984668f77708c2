package models

import "time"

type Staff struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	ProfileID uint          `gorm:"index" json:"profile_id"`
	Profile   BarberProfile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100" json:"email"`
	Phone  string `gorm:"size:20" json:"phone"`
	Active bool   `gorm:"default:true" json:"active"`

	Availability []StaffAvailability `gorm:"foreignKey:StaffID" json:"availability,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
