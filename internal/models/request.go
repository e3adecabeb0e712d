package models

import "time"

type RequestType string
type RequestPriority string
type RequestStatus string

const (
	TypeDeployment RequestType = "despliegue"
	TypeAccess     RequestType = "acceso"
	TypeChange     RequestType = "cambio"
	TypeTool       RequestType = "herramienta"

	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"

	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Solicitud de aprobación. El estado arranca en pending y cambia una sola
// vez, a approved o rejected.
type Request struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Code        string          `gorm:"size:32;uniqueIndex;not null" json:"request_id"` // REQ-<millis>, inmutable
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	RequestType RequestType     `gorm:"type:varchar(30);not null" json:"request_type"`
	Priority    RequestPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Status      RequestStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	RequesterID uint `gorm:"not null;index" json:"requester_id"`
	ApproverID  uint `gorm:"not null;index" json:"approver_id"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"` // null hasta la primera transición

	// columnas calculadas en las lecturas, no existen en la tabla
	RequesterName string `gorm:"->;-:migration" json:"requester_name"`
	ApproverName  string `gorm:"->;-:migration" json:"approver_name"`
}
