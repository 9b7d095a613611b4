package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BudgetItem is one RAB (Rencana Anggaran Biaya) line of a project's
// budget plan. TotalPrice is recomputed on every write:
// quantity * unit_price + shipping_tax.
type BudgetItem struct {
	Id               string    `json:"id" gorm:"primaryKey"`
	ProjectId        string    `json:"project_id" gorm:"not null;index"`
	Project          Project   `json:"project,omitempty" gorm:"foreignKey:ProjectId;references:Id;constraint:OnDelete:CASCADE"`
	ItemName         string    `json:"item_name" gorm:"not null"`
	PurchasingSource string    `json:"purchasing_source"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unit_price" gorm:"type:numeric(14,2)"`
	ShippingTax      float64   `json:"shipping_tax" gorm:"type:numeric(14,2)"`
	TotalPrice       float64   `json:"total_price" gorm:"type:numeric(14,2)"`
	PurchaseLink     string    `json:"purchase_link"`
	Status           string    `json:"status" gorm:"type:VARCHAR(20);default:planning"`
	CreatedAt        time.Time `json:"created_at"`
}

func (item *BudgetItem) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	item.Id = uuid.NewString()
	return
}
