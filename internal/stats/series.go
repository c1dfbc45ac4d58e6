package stats

import (
	"sort"
	"time"

	"tradejournal/internal/model"
	"tradejournal/pkg/utils"
)

// EquityPoint is one step of the cumulative P&L curve.
type EquityPoint struct {
	Date          string  `json:"date"`
	DisplayDate   string  `json:"display_date"`
	CumulativePnl float64 `json:"cumulative_pnl"`
}

// DailyPoint is one bar of the fixed-window daily P&L series.
type DailyPoint struct {
	Date        string  `json:"date"`
	DisplayDate string  `json:"display_date"`
	Pnl         float64 `json:"pnl"`
}

// EquityCurve groups trades by date, sums P&L per date and returns the
// running cumulative sum in ascending date order. Days without trades are
// omitted, not interpolated.
func EquityCurve(trades []model.Trade) []EquityPoint {
	daily := sumByDate(trades)

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]EquityPoint, 0, len(dates))
	var cumulative float64
	for _, date := range dates {
		cumulative += daily[date]
		points = append(points, EquityPoint{
			Date:          date,
			DisplayDate:   utils.DateLabel(date),
			CumulativePnl: cumulative,
		})
	}
	return points
}

// DailySeries returns exactly days ordered points, one per calendar day from
// now-(days-1) through now. Days without trades get an explicit zero bar.
func DailySeries(trades []model.Trade, now time.Time, days int) []DailyPoint {
	if days <= 0 {
		return nil
	}

	daily := sumByDate(trades)
	start := utils.Midnight(now).AddDate(0, 0, -(days - 1))

	points := make([]DailyPoint, 0, days)
	for i := 0; i < days; i++ {
		date := utils.DateKey(start.AddDate(0, 0, i))
		points = append(points, DailyPoint{
			Date:        date,
			DisplayDate: utils.DateLabel(date),
			Pnl:         daily[date],
		})
	}
	return points
}

func sumByDate(trades []model.Trade) map[string]float64 {
	daily := make(map[string]float64)
	for _, t := range trades {
		daily[utils.DateKey(t.TradeDate)] += t.PnlValue()
	}
	return daily
}
