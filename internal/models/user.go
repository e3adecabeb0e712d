package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Usuario del directorio. El motor de ciclo de vida nunca lo modifica:
// solo lo lee para resolver nombres y validar actores.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"size:255" json:"email"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	Role      UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
