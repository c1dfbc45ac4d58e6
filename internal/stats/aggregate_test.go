package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradejournal/internal/model"
	"tradejournal/pkg/utils"
)

func closedTrade(symbol string, pnl float64, date time.Time) model.Trade {
	return model.Trade{
		Symbol:    symbol,
		TradeDate: date,
		Pnl:       utils.ToPointer(pnl),
		IsWinner:  utils.ToPointer(pnl > 0),
		IsClosed:  true,
	}
}

func openTrade(symbol string, date time.Time) model.Trade {
	return model.Trade{
		Symbol:    symbol,
		TradeDate: date,
		IsClosed:  false,
	}
}

func TestAggregate(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		trades         []model.Trade
		currentCapital float64
		want           PeriodStats
	}{
		{
			name:   "empty input yields all zeroes",
			trades: nil,
			want:   PeriodStats{},
		},
		{
			name: "mixed winners and losers",
			trades: []model.Trade{
				closedTrade("RELIANCE", 500, day),
				closedTrade("TCS", -200, day),
				closedTrade("INFY", 300, day),
				closedTrade("HDFCBANK", -100, day),
			},
			currentCapital: 100000,
			want: PeriodStats{
				TotalPnl:      500,
				TotalTrades:   4,
				WinningTrades: 2,
				LosingTrades:  2,
				TotalProfit:   800,
				TotalLoss:     -300,
				AvgProfit:     400,
				AvgLoss:       -150,
				MaxProfit:     500,
				MaxLoss:       -200,
				HitRatio:      50,
				RRRatio:       400.0 / 150.0,
				ProfitFactor:  800.0 / 300.0,
				ROI:           0.5,
			},
		},
		{
			name: "open trades are excluded",
			trades: []model.Trade{
				closedTrade("RELIANCE", 250, day),
				openTrade("TCS", day),
			},
			want: PeriodStats{
				TotalPnl:      250,
				TotalTrades:   1,
				WinningTrades: 1,
				TotalProfit:   250,
				AvgProfit:     250,
				MaxProfit:     250,
				MaxLoss:       250,
				HitRatio:      100,
			},
		},
		{
			name: "all losers leaves win-side ratios at zero",
			trades: []model.Trade{
				closedTrade("RELIANCE", -100, day),
				closedTrade("TCS", -400, day),
			},
			want: PeriodStats{
				TotalPnl:     -500,
				TotalTrades:  2,
				LosingTrades: 2,
				TotalLoss:    -500,
				AvgLoss:      -250,
				MaxProfit:    -100,
				MaxLoss:      -400,
			},
		},
		{
			name: "all winners leaves loss-side ratios at zero",
			trades: []model.Trade{
				closedTrade("RELIANCE", 100, day),
				closedTrade("TCS", 300, day),
			},
			want: PeriodStats{
				TotalPnl:      400,
				TotalTrades:   2,
				WinningTrades: 2,
				TotalProfit:   400,
				AvgProfit:     200,
				MaxProfit:     300,
				MaxLoss:       100,
				HitRatio:      100,
			},
		},
		{
			name: "zero capital skips roi",
			trades: []model.Trade{
				closedTrade("RELIANCE", 500, day),
			},
			currentCapital: 0,
			want: PeriodStats{
				TotalPnl:      500,
				TotalTrades:   1,
				WinningTrades: 1,
				TotalProfit:   500,
				AvgProfit:     500,
				MaxProfit:     500,
				MaxLoss:       500,
				HitRatio:      100,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.trades, tt.currentCapital)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregateBreakEvenTradeCountsInNeitherBucket(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	trades := []model.Trade{
		{
			Symbol:    "RELIANCE",
			TradeDate: day,
			Pnl:       utils.ToPointer(0.0),
			IsClosed:  true,
		},
		closedTrade("TCS", 100, day),
	}

	got := Aggregate(trades, 0)

	assert.Equal(t, 2, got.TotalTrades)
	assert.Equal(t, 1, got.WinningTrades)
	assert.Equal(t, 0, got.LosingTrades)
	assert.Equal(t, 100.0, got.TotalPnl)
	assert.Equal(t, 50.0, got.HitRatio)
}

func TestAggregateInvariants(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	trades := []model.Trade{
		closedTrade("A", 120, day),
		closedTrade("B", -75, day),
		closedTrade("C", 40, day),
		closedTrade("D", -310, day),
		closedTrade("E", 990, day),
	}

	got := Aggregate(trades, 50000)

	assert.Equal(t, got.TotalTrades, got.WinningTrades+got.LosingTrades)
	assert.InDelta(t, got.TotalPnl, got.TotalProfit+got.TotalLoss, 1e-9)
	assert.GreaterOrEqual(t, got.HitRatio, 0.0)
	assert.LessOrEqual(t, got.HitRatio, 100.0)
	assert.GreaterOrEqual(t, got.MaxProfit, got.MaxLoss)
	assert.GreaterOrEqual(t, got.RRRatio, 0.0)
	assert.GreaterOrEqual(t, got.ProfitFactor, 0.0)
}
