package booking

import (
	"time"

	"camperrent/internal/domain"
)

// Selection is the ephemeral two-click calendar state: no dates chosen,
// a pending start, or a committed range. It is a plain value threaded
// through the pure transition function, so tests need no UI.
type Selection struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Complete reports whether a full range has been chosen.
func (s Selection) Complete() bool {
	return s.Start != nil && s.End != nil
}

// SelectDay advances the selection for a click on a free day:
//
//	no start chosen        -> the day becomes the pending start
//	day before the start   -> re-anchor the start
//	day at/after the start -> complete the range
//	range already complete -> discard it, the day starts a new selection
//
// Clicks on past or booked days must be filtered out first (ClassifyDay);
// SelectDay itself is total over clickable days.
func SelectDay(sel Selection, day time.Time) Selection {
	d := DateOnly(day)

	switch {
	case sel.Start == nil || sel.Complete():
		return Selection{Start: &d}
	case d.Before(*sel.Start):
		return Selection{Start: &d}
	default:
		return Selection{Start: sel.Start, End: &d}
	}
}

type DayStatus string

const (
	DayPast     DayStatus = "past"
	DayBooked   DayStatus = "booked"
	DaySelected DayStatus = "selected"
	DayFree     DayStatus = "free"
)

// ClassifyDay renders one displayed day: past before today, booked when it
// falls inside any stored booking, selected when inside the pending range
// (or equal to a lone pending start), free otherwise.
func ClassifyDay(day, today time.Time, existing []domain.Booking, sel Selection) DayStatus {
	d := DateOnly(day)

	if d.Before(DateOnly(today)) {
		return DayPast
	}
	if dayBooked(existing, d) {
		return DayBooked
	}
	if sel.Start != nil {
		if sel.End != nil {
			if !d.Before(*sel.Start) && !d.After(*sel.End) {
				return DaySelected
			}
		} else if d.Equal(*sel.Start) {
			return DaySelected
		}
	}
	return DayFree
}

type DayCell struct {
	Date      string    `json:"date"`
	Status    DayStatus `json:"status"`
	Clickable bool      `json:"clickable"`
}

type MonthView struct {
	Year    int        `json:"year"`
	Month   int        `json:"month"`
	CanPrev bool       `json:"can_prev"`
	Days    []DayCell  `json:"days"`
}

// BuildMonthView projects a month of day cells. It is a pure view: it
// never mutates the selection, and "previous" navigation is disabled at
// or before the month containing today.
func BuildMonthView(year int, month time.Month, today time.Time, existing []domain.Booking, sel Selection) MonthView {
	today = DateOnly(today)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	view := MonthView{
		Year:    year,
		Month:   int(month),
		CanPrev: first.After(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)),
	}

	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		status := ClassifyDay(d, today, existing, sel)
		view.Days = append(view.Days, DayCell{
			Date:      d.Format(dateLayout),
			Status:    status,
			Clickable: status == DayFree || status == DaySelected,
		})
	}
	return view
}
