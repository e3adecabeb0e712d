package models

import "time"

type HistoryAction string

const (
	ActionCreated  HistoryAction = "created"
	ActionApproved HistoryAction = "approved"
	ActionRejected HistoryAction = "rejected"
)

// Entrada del historial de una solicitud. Solo se inserta y se lee;
// no hay ruta de actualización ni de borrado.
type HistoryEntry struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	RequestID uint          `gorm:"not null;index" json:"request_id"`
	UserID    uint          `gorm:"not null" json:"user_id"`
	Action    HistoryAction `gorm:"type:varchar(20);not null" json:"action"`
	Comment   string        `gorm:"type:text" json:"comment"`
	CreatedAt time.Time     `json:"created_at"`

	UserName string `gorm:"->;-:migration" json:"user_name"`
}
