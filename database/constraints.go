package database

import (
	"gorm.io/gorm"

	"github.com/rafaeldias/pos-backoffice/utils"
)

// EnsureSessionConstraints applies the schema-level backstop for the
// one-open-session-per-table invariant: a partial unique index on table_id
// for rows with closed_at still null. Runs after AutoMigrate.
func EnsureSessionConstraints(db *gorm.DB) error {
	dialect := db.Dialector.Name()

	switch dialect {
	case "sqlite", "postgres":
		stmt := `CREATE UNIQUE INDEX IF NOT EXISTS idx_table_sessions_open_table
			ON table_sessions (table_id) WHERE closed_at IS NULL`
		if err := db.Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating open-session index: %v", err)
			return err
		}
		utils.InfoLogger.Printf("Open-session unique index ensured (%s)", dialect)
	default:
		// MySQL has no partial unique indexes; the transactional
		// check-then-insert in the session service is the only guard there.
		utils.InfoLogger.Printf("Dialect %s does not support partial unique indexes; relying on transactional open-session check", dialect)
	}

	return nil
}
