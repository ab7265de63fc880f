package entity

import (
	"time"

	"github.com/google/uuid"

	"ai-csvchat-be/pkg/table"
)

// SessionContext is the immutable record built once per upload. The summary
// is computed at ingest and reused for every question in the session; the
// table is retained for direct numeric cross-checks.
type SessionContext struct {
	Id          uuid.UUID
	SourceName  string
	RowCount    int
	ColumnCount int
	Summary     string
	Table       *table.Table
	CreatedAt   time.Time
}
