package stats

import (
	"time"

	"tradejournal/internal/model"
	"tradejournal/pkg/utils"
)

// Period selects the reporting window for a trade subset.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}

// FilterPeriod returns the trades whose trade date falls inside the period,
// evaluated against now's local calendar. Weeks start on Monday.
func FilterPeriod(trades []model.Trade, period Period, now time.Time) []model.Trade {
	switch period {
	case PeriodToday:
		out := make([]model.Trade, 0, len(trades))
		for _, t := range trades {
			if utils.SameDay(t.TradeDate, now) {
				out = append(out, t)
			}
		}
		return out
	case PeriodWeek:
		return filterFrom(trades, utils.StartOfWeek(now))
	case PeriodMonth:
		return filterFrom(trades, utils.StartOfMonth(now))
	default:
		out := make([]model.Trade, len(trades))
		copy(out, trades)
		return out
	}
}

// FilterLookback returns the trades dated within the last days calendar days,
// inclusive of the cutoff date.
func FilterLookback(trades []model.Trade, days int, now time.Time) []model.Trade {
	return filterFrom(trades, utils.Midnight(now).AddDate(0, 0, -days))
}

func filterFrom(trades []model.Trade, cutoff time.Time) []model.Trade {
	out := make([]model.Trade, 0, len(trades))
	for _, t := range trades {
		d := utils.Midnight(t.TradeDate)
		if !d.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
