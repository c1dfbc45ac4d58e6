package dto

import (
	"tradejournal/internal/stats"
)

// PeriodPnl is one cell of the P&L summary strip.
type PeriodPnl struct {
	Pnl    float64 `json:"pnl"`
	ROI    float64 `json:"roi"`
	Trades int     `json:"trades"`
}

// PnlSummary covers the four standard reporting periods at once.
type PnlSummary struct {
	Today   PeriodPnl `json:"today"`
	Week    PeriodPnl `json:"week"`
	Month   PeriodPnl `json:"month"`
	AllTime PeriodPnl `json:"all_time"`
}

// StatsOverview is the full analytics payload: per-period statistics plus
// the chart series and extremes, sharing one fetched ledger.
type StatsOverview struct {
	Today    stats.PeriodStats   `json:"today"`
	Week     stats.PeriodStats   `json:"week"`
	Month    stats.PeriodStats   `json:"month"`
	AllTime  stats.PeriodStats   `json:"all_time"`
	Equity   []stats.EquityPoint `json:"equity_curve"`
	Daily    []stats.DailyPoint  `json:"daily_pnl"`
	Extremes stats.Extremes      `json:"extremes"`
}

// TargetProgress reports progress toward the configured profit targets.
type TargetProgress struct {
	DailyPnl        float64 `json:"daily_pnl"`
	WeeklyPnl       float64 `json:"weekly_pnl"`
	MonthlyPnl      float64 `json:"monthly_pnl"`
	DailyPercent    float64 `json:"daily_percent"`
	WeeklyPercent   float64 `json:"weekly_percent"`
	MonthlyPercent  float64 `json:"monthly_percent"`
	DailyAchieved   bool    `json:"daily_achieved"`
	WeeklyAchieved  bool    `json:"weekly_achieved"`
	MonthlyAchieved bool    `json:"monthly_achieved"`
}
