package Models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
)

// AuditLog is append-only: rows are inserted and queried, never changed.
type AuditLog struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      *uint          `json:"user_id" gorm:"index"`
	UserEmail   string         `json:"user_email" gorm:"type:varchar(255)"`
	Action      string         `json:"action" gorm:"type:varchar(50);index;not null"`
	Entity      string         `json:"entity" gorm:"type:varchar(100);index;not null"`
	EntityID    string         `json:"entity_id" gorm:"type:varchar(100)"`
	OldValues   datatypes.JSON `json:"old_values"`
	NewValues   datatypes.JSON `json:"new_values"`
	IPAddress   string         `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent   string         `json:"user_agent" gorm:"type:text"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
}
