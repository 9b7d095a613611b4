package models

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentLog records every generated invoice document together with a
// snapshot of the parameters it was generated from, so a produced PDF can
// be traced back even after the underlying invoices change.
type DocumentLog struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ProjectId     string         `json:"project_id" gorm:"index"`
	InvoiceNumber string         `json:"invoice_number" gorm:"index"`
	Filename      string         `json:"filename"`
	Mode          string         `json:"mode" gorm:"type:VARCHAR(20)"` // "preview" | "save"
	Pages         int            `json:"pages"`
	Total         float64        `json:"total" gorm:"type:numeric(14,2)"`
	Params        datatypes.JSON `json:"params" gorm:"type:jsonb"`
	CreatedAt     time.Time      `json:"created_at"`
}
