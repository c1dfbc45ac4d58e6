package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradejournal/internal/model"
)

func TestPeriodValid(t *testing.T) {
	assert.True(t, PeriodToday.Valid())
	assert.True(t, PeriodWeek.Valid())
	assert.True(t, PeriodMonth.Valid())
	assert.True(t, PeriodAll.Valid())
	assert.False(t, Period("year").Valid())
	assert.False(t, Period("").Valid())
}

func TestFilterPeriod(t *testing.T) {
	// Wednesday 2026-03-18.
	now := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)

	today := closedTrade("A", 10, time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC))
	monday := closedTrade("B", 20, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC))
	lastWeek := closedTrade("C", 30, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC))
	monthStart := closedTrade("D", 40, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	lastMonth := closedTrade("E", 50, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC))
	tomorrow := closedTrade("F", 60, time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC))
	all := []model.Trade{today, monday, lastWeek, monthStart, lastMonth, tomorrow}

	tests := []struct {
		name   string
		period Period
		want   []string
	}{
		{
			name:   "today matches the exact date only",
			period: PeriodToday,
			want:   []string{"A"},
		},
		{
			name:   "week starts on monday",
			period: PeriodWeek,
			want:   []string{"A", "B", "F"},
		},
		{
			name:   "month starts on the first",
			period: PeriodMonth,
			want:   []string{"A", "B", "C", "D", "F"},
		},
		{
			name:   "all keeps everything",
			period: PeriodAll,
			want:   []string{"A", "B", "C", "D", "E", "F"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPeriod(all, tt.period, now)
			symbols := make([]string, 0, len(got))
			for _, tr := range got {
				symbols = append(symbols, tr.Symbol)
			}
			assert.Equal(t, tt.want, symbols)
		})
	}
}

func TestFilterPeriodDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
	all := []model.Trade{closedTrade("A", 10, now)}

	got := FilterPeriod(all, PeriodAll, now)
	got[0].Symbol = "CHANGED"

	assert.Equal(t, "A", all[0].Symbol)
}

func TestFilterLookback(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	inside := closedTrade("A", 10, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	outside := closedTrade("B", 20, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))

	got := FilterLookback([]model.Trade{inside, outside}, 30, now)

	assert.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Symbol)
}
