package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradejournal/internal/model"
)

func TestFindExtremes(t *testing.T) {
	d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		trades []model.Trade
		want   Extremes
	}{
		{
			name:   "empty input keeps sentinels",
			trades: nil,
			want:   Extremes{},
		},
		{
			name: "mixed trades",
			trades: []model.Trade{
				closedTrade("RELIANCE", 500, d1),
				closedTrade("TCS", -300, d1),
				closedTrade("INFY", 800, d2),
				closedTrade("HDFCBANK", -100, d2),
			},
			want: Extremes{
				MaxProfit:       800,
				MaxProfitSymbol: "INFY",
				MaxLoss:         -300,
				MaxLossSymbol:   "TCS",
				BestDay:         700,
				BestDayDate:     "2026-03-03",
				WorstDay:        0,
				WorstDayDate:    "",
			},
		},
		{
			name: "all losers never beat the flat sentinel on the profit side",
			trades: []model.Trade{
				closedTrade("RELIANCE", -100, d1),
				closedTrade("TCS", -400, d2),
			},
			want: Extremes{
				MaxProfit:       0,
				MaxProfitSymbol: "",
				MaxLoss:         -400,
				MaxLossSymbol:   "TCS",
				BestDay:         0,
				BestDayDate:     "",
				WorstDay:        -400,
				WorstDayDate:    "2026-03-03",
			},
		},
		{
			name: "tie keeps the first candidate",
			trades: []model.Trade{
				closedTrade("FIRST", 500, d1),
				closedTrade("SECOND", 500, d2),
			},
			want: Extremes{
				MaxProfit:       500,
				MaxProfitSymbol: "FIRST",
				MaxLoss:         0,
				MaxLossSymbol:   "",
				BestDay:         500,
				BestDayDate:     "2026-03-02",
				WorstDay:        0,
				WorstDayDate:    "",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindExtremes(tt.trades))
		})
	}
}

func TestAggregateDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	trades := []model.Trade{
		closedTrade("RELIANCE", 500, day),
		closedTrade("TCS", -200, day),
	}

	got := AggregateDay(trades, 100000)

	assert.Equal(t, 300.0, got.TotalPnl)
	assert.Equal(t, 2, got.TotalTrades)
	assert.Equal(t, 1, got.WinningTrades)
	assert.Equal(t, 1, got.LosingTrades)
	assert.Equal(t, 500.0, got.MaxProfit)
	assert.Equal(t, -200.0, got.MaxLoss)
	assert.Equal(t, 50.0, got.HitRatio)
	assert.InDelta(t, 0.3, got.ROIPercent, 1e-9)
}

func TestSummarizeMonth(t *testing.T) {
	mkDay := func(day int, pnl float64, trades, winners int) model.TradingDay {
		return model.TradingDay{
			Date:          time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
			TotalPnl:      pnl,
			TotalTrades:   trades,
			WinningTrades: winners,
		}
	}

	tests := []struct {
		name string
		days []model.TradingDay
		want MonthlySummary
	}{
		{
			name: "no days",
			want: MonthlySummary{},
		},
		{
			name: "mixed month",
			days: []model.TradingDay{
				mkDay(2, 700, 4, 3),
				mkDay(3, -250, 2, 0),
				mkDay(4, 0, 1, 0),
				mkDay(5, 1200, 3, 3),
			},
			want: MonthlySummary{
				TotalPnl:      1650,
				TradingDays:   4,
				GreenDays:     2,
				RedDays:       1,
				TotalTrades:   10,
				WinningTrades: 6,
				HitRatio:      60,
				BestDayPnl:    1200,
				BestDayDate:   "2026-03-05",
				WorstDayPnl:   -250,
				WorstDayDate:  "2026-03-03",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeMonth(tt.days))
		})
	}
}
