package output

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jmylchreest/coopsal/pkg/pipeline"
)

// DefaultTable is the table cleaned rows are stored in.
const DefaultTable = "cleaned_salaries"

const insertBatchSize = 500

// SQLiteWriter stores cleaned rows in a SQLite table. Flush replaces the
// table contents in one transaction, so re-running yields the same table.
type SQLiteWriter struct {
	db      *gorm.DB
	ctx     context.Context
	table   string
	rows    []pipeline.Row
	flushed bool
}

// NewSQLiteWriter opens (or creates) the database at path.
func NewSQLiteWriter(ctx context.Context, path, table string) (*SQLiteWriter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.WithContext(ctx).Table(table).AutoMigrate(&pipeline.Row{}); err != nil {
		return nil, fmt.Errorf("failed to migrate %s: %w", table, err)
	}

	return &SQLiteWriter{db: db, ctx: ctx, table: table}, nil
}

// Write buffers a single row.
func (w *SQLiteWriter) Write(data any) error {
	switch row := data.(type) {
	case pipeline.Row:
		w.rows = append(w.rows, row)
	case *pipeline.Row:
		w.rows = append(w.rows, *row)
	default:
		return fmt.Errorf("sqlite writer: unsupported row type %T", data)
	}
	return nil
}

// WriteAll buffers multiple rows.
func (w *SQLiteWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush replaces the table contents with the buffered rows.
func (w *SQLiteWriter) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true

	return w.db.WithContext(w.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(w.table).Where("1 = 1").Delete(&pipeline.Row{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", w.table, err)
		}
		if len(w.rows) == 0 {
			return nil
		}
		if err := tx.Table(w.table).CreateInBatches(w.rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert into %s: %w", w.table, err)
		}
		return nil
	})
}

// Close flushes and closes the database.
func (w *SQLiteWriter) Close() error {
	flushErr := w.Flush()

	sqlDB, err := w.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	return flushErr
}

// ReadSQLite loads every row from a table written by SQLiteWriter, in
// insertion order.
func ReadSQLite(ctx context.Context, path, table string) ([]pipeline.Row, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	var rows []pipeline.Row
	if err := db.WithContext(ctx).Table(table).Order("rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return rows, nil
}
