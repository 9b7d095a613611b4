package database

import (
	"fmt"

	"techforge-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(14,2))
// - Indexes (project-scoped children, idempotency keys)
// - Basic CHECK constraints
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Project{},
			&models.BudgetItem{},
			&models.Transaction{},
			&models.Invoice{},
			&models.DocumentLog{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(14,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE projects      ALTER COLUMN total_budget  TYPE numeric(14,2)`,
			`ALTER TABLE budget_items  ALTER COLUMN unit_price    TYPE numeric(14,2)`,
			`ALTER TABLE budget_items  ALTER COLUMN shipping_tax  TYPE numeric(14,2)`,
			`ALTER TABLE budget_items  ALTER COLUMN total_price   TYPE numeric(14,2)`,
			`ALTER TABLE transactions  ALTER COLUMN debit         TYPE numeric(14,2)`,
			`ALTER TABLE transactions  ALTER COLUMN credit        TYPE numeric(14,2)`,
			`ALTER TABLE invoices      ALTER COLUMN price         TYPE numeric(14,2)`,
			`ALTER TABLE invoices      ALTER COLUMN total_amount  TYPE numeric(14,2)`,
			`ALTER TABLE document_logs ALTER COLUMN total         TYPE numeric(14,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_budget_items_project ON budget_items (project_id)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_project ON transactions (project_id)`,
			`CREATE INDEX IF NOT EXISTS idx_invoices_project ON invoices (project_id)`,
			`CREATE INDEX IF NOT EXISTS idx_document_logs_project ON document_logs (project_id)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Invoice quantity >= 1 and non-negative money
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoices'::regclass
					  AND conname  = 'chk_invoices_quantity_min'
				) THEN
					ALTER TABLE invoices
					ADD CONSTRAINT chk_invoices_quantity_min
					CHECK (quantity >= 1);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoices'::regclass
					  AND conname  = 'chk_invoices_price_nonneg'
				) THEN
					ALTER TABLE invoices
					ADD CONSTRAINT chk_invoices_price_nonneg
					CHECK (price >= 0);
				END IF;
			END $$;`,
			// RAB quantity >= 1, non-negative unit price
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'budget_items'::regclass
					  AND conname  = 'chk_budget_items_quantity_min'
				) THEN
					ALTER TABLE budget_items
					ADD CONSTRAINT chk_budget_items_quantity_min
					CHECK (quantity >= 1);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'budget_items'::regclass
					  AND conname  = 'chk_budget_items_unit_price_nonneg'
				) THEN
					ALTER TABLE budget_items
					ADD CONSTRAINT chk_budget_items_unit_price_nonneg
					CHECK (unit_price >= 0);
				END IF;
			END $$;`,
			// Ledger amounts non-negative
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'transactions'::regclass
					  AND conname  = 'chk_transactions_amounts_nonneg'
				) THEN
					ALTER TABLE transactions
					ADD CONSTRAINT chk_transactions_amounts_nonneg
					CHECK (debit >= 0 AND credit >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
