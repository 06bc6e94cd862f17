package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Vehicle struct {
	ID                 uint             `json:"id" gorm:"primaryKey"`
	VehicleNumber      string           `json:"vehicle_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	VehicleType        string           `json:"vehicle_type" gorm:"type:varchar(50)"`
	DriverName         string           `json:"driver_name" gorm:"type:varchar(150)"`
	Phone              string           `json:"phone" gorm:"type:varchar(50)"`
	OwnerName          string           `json:"owner_name" gorm:"type:varchar(150)"`
	Address            string           `json:"address" gorm:"type:text"`
	TotalCapacity      *int             `json:"total_capacity"`
	PetrolTankCapacity *decimal.Decimal `json:"petrol_tank_capacity" gorm:"type:numeric(10,2)"`
	Mileage            *decimal.Decimal `json:"mileage" gorm:"type:numeric(10,2)"`
	JoinDate           string           `json:"join_date" gorm:"type:date"`
	Status             string           `json:"status" gorm:"type:varchar(20);default:'active'"`
	Note               string           `json:"note" gorm:"type:text"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
