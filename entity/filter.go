package entity

import "time"

// Date-range filter presets
const (
	RangeToday       = "today"
	RangeThisWeek    = "this_week"
	RangeThisMonth   = "this_month"
	RangeThisQuarter = "this_quarter"
	RangeThisYear    = "this_year"
	RangeCustom      = "custom"
	RangeAllTime     = "all_time"
)

// RangeFilter selects which display events fall inside the visible window.
// Start and End are only honored when Preset is RangeCustom.
type RangeFilter struct {
	Preset string    `json:"preset"`
	Start  time.Time `json:"start,omitempty"`
	End    time.Time `json:"end,omitempty"`
}

// PageRequest is a 1-based pagination request over the visible event list.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type PagedEvents struct {
	Events     []LedgerEvent `json:"events"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
}
