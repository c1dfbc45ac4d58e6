package stats

import (
	"sort"

	"tradejournal/internal/model"
	"tradejournal/pkg/utils"
)

// Extremes holds the best and worst single trade and single day of a trade
// subset. Zero P&L with an empty symbol or date is the "no data" sentinel, it
// also means no trade or day ever beat flat.
type Extremes struct {
	MaxProfit       float64 `json:"max_profit"`
	MaxProfitSymbol string  `json:"max_profit_symbol"`
	MaxLoss         float64 `json:"max_loss"`
	MaxLossSymbol   string  `json:"max_loss_symbol"`
	BestDay         float64 `json:"best_day"`
	BestDayDate     string  `json:"best_day_date"`
	WorstDay        float64 `json:"worst_day"`
	WorstDayDate    string  `json:"worst_day_date"`
}

// FindExtremes scans a trade subset for extreme single trades and extreme
// days. Ties keep the first candidate encountered in iteration order.
func FindExtremes(trades []model.Trade) Extremes {
	var ex Extremes

	for _, t := range trades {
		pnl := t.PnlValue()
		if pnl > ex.MaxProfit {
			ex.MaxProfit = pnl
			ex.MaxProfitSymbol = t.Symbol
		}
		if pnl < ex.MaxLoss {
			ex.MaxLoss = pnl
			ex.MaxLossSymbol = t.Symbol
		}
	}

	daily := sumByDate(trades)
	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		pnl := daily[date]
		if pnl > ex.BestDay {
			ex.BestDay = pnl
			ex.BestDayDate = date
		}
		if pnl < ex.WorstDay {
			ex.WorstDay = pnl
			ex.WorstDayDate = date
		}
	}

	return ex
}

// DayAggregate derives the per-day fields of a TradingDay from that day's
// trades. It is the recompute step invoked after every trade mutation.
type DayAggregate struct {
	TotalPnl      float64
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	MaxProfit     float64
	MaxLoss       float64
	HitRatio      float64
	ROIPercent    float64
}

// AggregateDay reduces one day's trades into the TradingDay derived fields.
// openingCapital drives the day ROI, pass 0 when unknown.
func AggregateDay(trades []model.Trade, openingCapital float64) DayAggregate {
	s := Aggregate(trades, openingCapital)
	return DayAggregate{
		TotalPnl:      s.TotalPnl,
		TotalTrades:   s.TotalTrades,
		WinningTrades: s.WinningTrades,
		LosingTrades:  s.LosingTrades,
		MaxProfit:     s.MaxProfit,
		MaxLoss:       s.MaxLoss,
		HitRatio:      s.HitRatio,
		ROIPercent:    s.ROI,
	}
}

// MonthlySummary condenses a month of trading-day rows for the calendar view.
type MonthlySummary struct {
	TotalPnl      float64 `json:"total_pnl"`
	TradingDays   int     `json:"trading_days"`
	GreenDays     int     `json:"green_days"`
	RedDays       int     `json:"red_days"`
	TotalTrades   int     `json:"total_trades"`
	WinningTrades int     `json:"winning_trades"`
	HitRatio      float64 `json:"hit_ratio"`
	BestDayPnl    float64 `json:"best_day_pnl"`
	BestDayDate   string  `json:"best_day_date"`
	WorstDayPnl   float64 `json:"worst_day_pnl"`
	WorstDayDate  string  `json:"worst_day_date"`
}

// SummarizeMonth folds trading-day aggregates into a MonthlySummary.
func SummarizeMonth(days []model.TradingDay) MonthlySummary {
	var sum MonthlySummary
	sum.TradingDays = len(days)

	for _, d := range days {
		sum.TotalPnl += d.TotalPnl
		sum.TotalTrades += d.TotalTrades
		sum.WinningTrades += d.WinningTrades

		switch {
		case d.TotalPnl > 0:
			sum.GreenDays++
		case d.TotalPnl < 0:
			sum.RedDays++
		}

		if d.TotalPnl > sum.BestDayPnl {
			sum.BestDayPnl = d.TotalPnl
			sum.BestDayDate = utils.DateKey(d.Date)
		}
		if d.TotalPnl < sum.WorstDayPnl {
			sum.WorstDayPnl = d.TotalPnl
			sum.WorstDayDate = utils.DateKey(d.Date)
		}
	}

	if sum.TotalTrades > 0 {
		sum.HitRatio = float64(sum.WinningTrades) / float64(sum.TotalTrades) * 100
	}
	return sum
}
