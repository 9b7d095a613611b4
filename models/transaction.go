package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is a single ledger entry of a project: income goes to
// Credit, expense to Debit (one of the two is zero).
type Transaction struct {
	Id               string     `json:"id" gorm:"primaryKey"`
	ProjectId        string     `json:"project_id" gorm:"not null;index"`
	Project          Project    `json:"project,omitempty" gorm:"foreignKey:ProjectId;references:Id;constraint:OnDelete:CASCADE"`
	TransactionDate  *time.Time `json:"transaction_date"`
	Description      string     `json:"description" gorm:"not null"`
	Debit            float64    `json:"debit" gorm:"type:numeric(14,2)"`
	Credit           float64    `json:"credit" gorm:"type:numeric(14,2)"`
	TransactionType  string     `json:"transaction_type" gorm:"type:VARCHAR(20);not null"`
	ProofDocumentURL string     `json:"proof_document_url"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	t.Id = uuid.NewString()
	return
}
