package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementGenerated is the audit event published after a statement request
// completes.
type StatementGenerated struct {
	EventID        string          `json:"event_id"`
	CustomerID     string          `json:"customer_id"`
	EventCount     int             `json:"event_count"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	WarningCount   int             `json:"warning_count"`
	GeneratedAt    time.Time       `json:"generated_at"`
}
