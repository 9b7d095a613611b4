package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is one billable line of a project. TotalAmount is recomputed on
// every write (price * quantity), so stored totals can never drift from
// their factors.
type Invoice struct {
	Id          string    `json:"id" gorm:"primaryKey"`
	ProjectId   string    `json:"project_id" gorm:"not null;index"`
	Project     Project   `json:"project,omitempty" gorm:"foreignKey:ProjectId;references:Id;constraint:OnDelete:CASCADE"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"type:numeric(14,2)"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount" gorm:"type:numeric(14,2)"`
	CreatedAt   time.Time `json:"created_at"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	invoice.Id = uuid.NewString()
	return
}
