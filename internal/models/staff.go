package models

import (
	"time"
)

// Staff roles carried in access tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Staff is a pizzeria employee owning API clients
type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Role      string    `gorm:"not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}
