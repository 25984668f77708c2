package models

import "time"

type ShopImage struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index" json:"profile_id"`

	Key        string `gorm:"size:255;not null" json:"-"`
	Alt        string `gorm:"size:255" json:"alt"`
	OrderIndex int    `json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
}
