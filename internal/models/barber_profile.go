package models

import "time"

type BarberProfile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"uniqueIndex" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ShopName    string `gorm:"size:100;not null" json:"shop_name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:500" json:"description"`

	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	Country string `gorm:"size:100" json:"country"`
	Phone   string `gorm:"size:20" json:"phone"`

	Currency string `gorm:"size:3;default:'EUR'" json:"currency"`
	Locale   string `gorm:"size:5;default:'en'" json:"locale"`
	Timezone string `gorm:"size:50;default:'Europe/Berlin'" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
