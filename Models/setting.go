package Models

import (
	"time"
)

// Setting is a keyed text value; Key is the business identifier, the
// surrogate ID only exists because GORM wants one.
type Setting struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Key         string    `json:"key" gorm:"type:varchar(100);uniqueIndex;not null"`
	Value       string    `json:"value" gorm:"type:text"`
	Category    string    `json:"category" gorm:"type:varchar(50)"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
