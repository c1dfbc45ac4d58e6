package stats

import (
	"math"

	"tradejournal/internal/model"
)

// PeriodStats is the fixed statistics record every display surface consumes.
// Ratios fall back to 0 instead of dividing by zero, callers rely on never
// seeing NaN or Inf here.
type PeriodStats struct {
	TotalPnl      float64 `json:"total_pnl"`
	TotalTrades   int     `json:"total_trades"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
	TotalProfit   float64 `json:"total_profit"`
	TotalLoss     float64 `json:"total_loss"`
	AvgProfit     float64 `json:"avg_profit"`
	AvgLoss       float64 `json:"avg_loss"`
	MaxProfit     float64 `json:"max_profit"`
	MaxLoss       float64 `json:"max_loss"`
	HitRatio      float64 `json:"hit_ratio"`
	RRRatio       float64 `json:"rr_ratio"`
	ProfitFactor  float64 `json:"profit_factor"`
	ROI           float64 `json:"roi"`
}

// Aggregate reduces a trade subset into a PeriodStats record. Only closed
// trades count; a closed trade with an undetermined winner flag contributes
// to totals but to neither the winning nor the losing bucket. currentCapital
// drives ROI, pass 0 when unknown.
func Aggregate(trades []model.Trade, currentCapital float64) PeriodStats {
	var s PeriodStats

	for _, t := range trades {
		if !t.IsClosed {
			continue
		}
		pnl := t.PnlValue()

		if s.TotalTrades == 0 {
			s.MaxProfit = pnl
			s.MaxLoss = pnl
		} else {
			s.MaxProfit = math.Max(s.MaxProfit, pnl)
			s.MaxLoss = math.Min(s.MaxLoss, pnl)
		}

		s.TotalTrades++
		s.TotalPnl += pnl

		switch {
		case t.IsWinner != nil && *t.IsWinner:
			s.WinningTrades++
			s.TotalProfit += pnl
		case t.IsWinner != nil && !*t.IsWinner:
			s.LosingTrades++
			s.TotalLoss += pnl
		}
	}

	if s.WinningTrades > 0 {
		s.AvgProfit = s.TotalProfit / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = s.TotalLoss / float64(s.LosingTrades)
	}
	if s.TotalTrades > 0 {
		s.HitRatio = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	}
	if s.AvgLoss != 0 {
		s.RRRatio = math.Abs(s.AvgProfit / s.AvgLoss)
	}
	if s.TotalLoss != 0 {
		s.ProfitFactor = math.Abs(s.TotalProfit / s.TotalLoss)
	}
	if currentCapital != 0 {
		s.ROI = s.TotalPnl / currentCapital * 100
	}

	return s
}
