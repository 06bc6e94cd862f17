package Models

import (
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"type:varchar(100);not null"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"` // stored lowercased
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"type:varchar(20);default:'manager'"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:'active'"`
	JoinDate     string     `json:"join_date" gorm:"type:date"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
