package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradejournal/internal/model"
)

func TestEquityCurve(t *testing.T) {
	d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	trades := []model.Trade{
		// Out of order on purpose, the curve sorts by date.
		closedTrade("B", -150, d2),
		closedTrade("A", 500, d1),
		closedTrade("C", 200, d3),
		closedTrade("D", 100, d1),
	}

	got := EquityCurve(trades)

	assert.Len(t, got, 3)
	assert.Equal(t, "2026-03-02", got[0].Date)
	assert.Equal(t, 600.0, got[0].CumulativePnl)
	assert.Equal(t, "2026-03-04", got[1].Date)
	assert.Equal(t, 450.0, got[1].CumulativePnl)
	assert.Equal(t, "2026-03-05", got[2].Date)
	assert.Equal(t, 650.0, got[2].CumulativePnl)
	assert.Equal(t, "Mar 02", got[0].DisplayDate)
}

func TestEquityCurveFinalValueMatchesTotalPnl(t *testing.T) {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	trades := []model.Trade{
		closedTrade("A", 120, base),
		closedTrade("B", -75, base.AddDate(0, 0, 1)),
		closedTrade("C", 40, base.AddDate(0, 0, 3)),
		closedTrade("D", -310, base.AddDate(0, 0, 7)),
	}

	curve := EquityCurve(trades)
	agg := Aggregate(trades, 0)

	assert.NotEmpty(t, curve)
	assert.InDelta(t, agg.TotalPnl, curve[len(curve)-1].CumulativePnl, 1e-9)
}

func TestEquityCurveEmpty(t *testing.T) {
	assert.Empty(t, EquityCurve(nil))
}

func TestTwoDayLedger(t *testing.T) {
	d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	trades := []model.Trade{
		closedTrade("A", 500, d1),
		closedTrade("B", -200, d1),
		closedTrade("C", 300, d2),
	}

	agg := Aggregate(trades, 0)
	assert.Equal(t, 600.0, agg.TotalPnl)
	assert.Equal(t, 3, agg.TotalTrades)
	assert.InDelta(t, 66.6667, agg.HitRatio, 1e-3)

	curve := EquityCurve(trades)
	assert.Len(t, curve, 2)
	assert.Equal(t, 300.0, curve[0].CumulativePnl)
	assert.Equal(t, 600.0, curve[1].CumulativePnl)
}

func TestDailySeries(t *testing.T) {
	now := time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC)
	trades := []model.Trade{
		closedTrade("A", 500, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)),
		closedTrade("B", -200, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
		// Outside the 30 day window.
		closedTrade("C", 999, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := DailySeries(trades, now, 30)

	assert.Len(t, got, 30)
	assert.Equal(t, "2026-03-02", got[0].Date)
	assert.Equal(t, "2026-03-31", got[29].Date)
	assert.Equal(t, 500.0, got[29].Pnl)

	var active int
	for _, p := range got {
		if p.Pnl != 0 {
			active++
		}
		if p.Date == "2026-03-15" {
			assert.Equal(t, -200.0, p.Pnl)
		}
	}
	assert.Equal(t, 2, active)
}

func TestDailySeriesNoTradesStillFullWindow(t *testing.T) {
	now := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	got := DailySeries(nil, now, 30)

	assert.Len(t, got, 30)
	for _, p := range got {
		assert.Zero(t, p.Pnl)
	}
}

func TestDailySeriesNonPositiveWindow(t *testing.T) {
	now := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, DailySeries(nil, now, 0))
	assert.Nil(t, DailySeries(nil, now, -5))
}
