package booking

import (
	"testing"
	"time"

	"camperrent/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDay_Transitions(t *testing.T) {
	d10 := date(2024, 3, 10)
	d12 := date(2024, 3, 12)
	d8 := date(2024, 3, 8)
	d20 := date(2024, 3, 20)

	tests := []struct {
		name      string
		sel       Selection
		click     time.Time
		wantStart time.Time
		wantEnd   *time.Time
	}{
		{"first click sets start", Selection{}, d10, d10, nil},
		{"second later click completes", Selection{Start: &d10}, d12, d10, &d12},
		{"same day completes zero-length range", Selection{Start: &d10}, d10, d10, &d10},
		{"earlier click re-anchors start", Selection{Start: &d10}, d8, d8, nil},
		{"click on complete range starts over", Selection{Start: &d10, End: &d12}, d20, d20, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectDay(tc.sel, tc.click)
			require.NotNil(t, got.Start)
			assert.True(t, got.Start.Equal(tc.wantStart))
			if tc.wantEnd == nil {
				assert.Nil(t, got.End)
			} else {
				require.NotNil(t, got.End)
				assert.True(t, got.End.Equal(*tc.wantEnd))
			}
		})
	}
}

func TestSelectDay_NormalizesToMidnight(t *testing.T) {
	got := SelectDay(Selection{}, time.Date(2024, 3, 10, 17, 45, 3, 0, time.UTC))
	require.NotNil(t, got.Start)
	assert.True(t, got.Start.Equal(date(2024, 3, 10)))
}

func TestClassifyDay(t *testing.T) {
	today := date(2024, 3, 12)
	existing := []domain.Booking{
		{Start: date(2024, 3, 14), End: date(2024, 3, 16)},
	}
	selStart := date(2024, 3, 18)
	selEnd := date(2024, 3, 20)

	tests := []struct {
		name string
		day  time.Time
		sel  Selection
		want DayStatus
	}{
		{"yesterday is past", date(2024, 3, 11), Selection{}, DayPast},
		{"today is free", today, Selection{}, DayFree},
		{"inside a booking", date(2024, 3, 15), Selection{}, DayBooked},
		{"booking end day", date(2024, 3, 16), Selection{}, DayBooked},
		{"pending start highlighted", selStart, Selection{Start: &selStart}, DaySelected},
		{"inside chosen range", date(2024, 3, 19), Selection{Start: &selStart, End: &selEnd}, DaySelected},
		{"after chosen range", date(2024, 3, 21), Selection{Start: &selStart, End: &selEnd}, DayFree},
		{"booked wins over selection", date(2024, 3, 15), Selection{Start: date14p(), End: &selEnd}, DayBooked},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyDay(tc.day, today, existing, tc.sel))
		})
	}
}

func date14p() *time.Time {
	d := date(2024, 3, 14)
	return &d
}

func TestBuildMonthView(t *testing.T) {
	today := date(2024, 3, 12)
	existing := []domain.Booking{
		{Start: date(2024, 3, 14), End: date(2024, 3, 16)},
	}

	view := BuildMonthView(2024, time.March, today, existing, Selection{})

	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 3, view.Month)
	assert.False(t, view.CanPrev, "cannot navigate before the current month")
	require.Len(t, view.Days, 31)

	assert.Equal(t, "2024-03-01", view.Days[0].Date)
	assert.Equal(t, DayPast, view.Days[0].Status)
	assert.False(t, view.Days[0].Clickable)

	assert.Equal(t, DayFree, view.Days[11].Status) // today
	assert.True(t, view.Days[11].Clickable)

	assert.Equal(t, DayBooked, view.Days[14].Status)
	assert.False(t, view.Days[14].Clickable)
}

func TestBuildMonthView_CanPrevFromFutureMonth(t *testing.T) {
	today := date(2024, 3, 12)

	view := BuildMonthView(2024, time.April, today, nil, Selection{})
	assert.True(t, view.CanPrev)
	require.Len(t, view.Days, 30)
	assert.Equal(t, DayFree, view.Days[0].Status)
}
