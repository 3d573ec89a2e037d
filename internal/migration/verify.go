package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Drift describes how the live schema falls short of a model.
type Drift struct {
	Table          string
	MissingTable   bool
	MissingColumns []string
}

func (d Drift) String() string {
	if d.MissingTable {
		return fmt.Sprintf("table %s is missing", d.Table)
	}
	return fmt.Sprintf("table %s is missing columns %v", d.Table, d.MissingColumns)
}

// Verify compares the given gorm models against the database and reports
// tables or columns the models expect but the database lacks.
func (m *Migrator) Verify(ctx context.Context, models ...any) ([]Drift, error) {
	db := m.db.WithContext(ctx)
	migrator := db.Migrator()

	var drifts []Drift
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !migrator.HasTable(table) {
			drifts = append(drifts, Drift{Table: table, MissingTable: true})
			continue
		}

		var missing []string
		for _, column := range stmt.Schema.DBNames {
			if !migrator.HasColumn(table, column) {
				missing = append(missing, column)
			}
		}
		if len(missing) > 0 {
			drifts = append(drifts, Drift{Table: table, MissingColumns: missing})
		}
	}
	return drifts, nil
}
