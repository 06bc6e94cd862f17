package Models

import (
	"time"
)

type Farmer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(150);not null"`
	Phone     string    `json:"phone" gorm:"type:varchar(50)"`
	Email     string    `json:"email" gorm:"type:varchar(150)"`
	Address   string    `json:"address" gorm:"type:text"`
	Notes     string    `json:"notes" gorm:"type:text"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
