package statement

import (
	"strings"
	"time"

	"github.com/radhian/loan-statement-engine/entity"
	"github.com/radhian/loan-statement-engine/utils"
)

// FilterEvents applies a date-range preset to a display list. The
// opening-balance row is never filtered out and stays first.
func FilterEvents(display []entity.LedgerEvent, filter entity.RangeFilter, now time.Time) []entity.LedgerEvent {
	start, end, all := rangeWindow(filter, now)

	kept := make([]entity.LedgerEvent, 0, len(display))
	for _, ev := range display {
		if ev.IsOpeningBalance {
			kept = append(kept, ev)
			continue
		}
		if all || (!ev.OccurredAt.Before(start) && !ev.OccurredAt.After(end)) {
			kept = append(kept, ev)
		}
	}
	return kept
}

// SearchEvents narrows the visible set to the events whose reference or
// description contains the term. This is a point lookup, not a filter: it
// does not compose with an active date range and drops the opening row.
func SearchEvents(display []entity.LedgerEvent, term string) []entity.LedgerEvent {
	if term == "" {
		return nil
	}

	matches := make([]entity.LedgerEvent, 0)
	for _, ev := range display {
		if ev.IsOpeningBalance {
			continue
		}
		if strings.Contains(ev.Reference, term) || strings.Contains(ev.Description, term) {
			matches = append(matches, ev)
		}
	}
	return matches
}

// Paginate returns the 1-based page slice plus total-count metadata.
func Paginate(events []entity.LedgerEvent, req entity.PageRequest) entity.PagedEvents {
	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.PageSize
	if size < 1 {
		size = 1
	}

	total := len(events)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := utils.Min(start+size, total)

	return entity.PagedEvents{
		Events:     events[start:end],
		TotalCount: total,
		Page:       page,
		PageSize:   size,
	}
}

func rangeWindow(filter entity.RangeFilter, now time.Time) (start, end time.Time, all bool) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filter.Preset {
	case entity.RangeToday:
		return dayStart, dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond), false
	case entity.RangeThisWeek:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // week starts Monday
		}
		weekStart := dayStart.AddDate(0, 0, -(weekday - 1))
		return weekStart, weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond), false
	case entity.RangeThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart, monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond), false
	case entity.RangeThisQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		quarterStart := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
		return quarterStart, quarterStart.AddDate(0, 3, 0).Add(-time.Nanosecond), false
	case entity.RangeThisYear:
		yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return yearStart, yearStart.AddDate(1, 0, 0).Add(-time.Nanosecond), false
	case entity.RangeCustom:
		return filter.Start, filter.End, false
	}
	return time.Time{}, time.Time{}, true
}
