package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CsvImport is the write-once audit record of one CSV import run.
// Errors holds the full per-row error list as jsonb; display layers may
// truncate it but the stored list is complete.
type CsvImport struct {
	BaseModel
	BrokerID      uuid.UUID       `json:"broker_id" gorm:"type:uuid;not null;index" validate:"required"`
	Filename      string          `json:"filename" gorm:"size:255;not null"`
	TotalRows     int             `json:"total_rows" gorm:"not null;default:0"`
	ImportedCount int             `json:"imported_count" gorm:"not null;default:0"`
	SkippedCount  int             `json:"skipped_count" gorm:"not null;default:0"`
	ErrorCount    int             `json:"error_count" gorm:"not null;default:0"`
	Errors        json.RawMessage `json:"errors,omitempty" gorm:"type:jsonb"`
	ImportedBy    uuid.UUID       `json:"imported_by" gorm:"type:uuid;not null"`
}

// TableName returns the table name for CsvImport
func (CsvImport) TableName() string {
	return "csv_imports"
}
