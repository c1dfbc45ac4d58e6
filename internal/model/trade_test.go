package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePnl(t *testing.T) {
	tests := []struct {
		name       string
		tradeType  TradeType
		entryPrice float64
		exitPrice  float64
		quantity   float64
		want       float64
	}{
		{
			name:       "long win",
			tradeType:  TradeTypeLong,
			entryPrice: 100,
			exitPrice:  110,
			quantity:   50,
			want:       500,
		},
		{
			name:       "long loss",
			tradeType:  TradeTypeLong,
			entryPrice: 110,
			exitPrice:  100,
			quantity:   50,
			want:       -500,
		},
		{
			name:       "short win",
			tradeType:  TradeTypeShort,
			entryPrice: 110,
			exitPrice:  100,
			quantity:   50,
			want:       500,
		},
		{
			name:       "short loss",
			tradeType:  TradeTypeShort,
			entryPrice: 100,
			exitPrice:  110,
			quantity:   50,
			want:       -500,
		},
		{
			name:       "break even",
			tradeType:  TradeTypeLong,
			entryPrice: 100,
			exitPrice:  100,
			quantity:   50,
			want:       0,
		},
		{
			name:       "fractional quantity",
			tradeType:  TradeTypeLong,
			entryPrice: 100,
			exitPrice:  101.5,
			quantity:   0.5,
			want:       0.75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePnl(tt.tradeType, tt.entryPrice, tt.exitPrice, tt.quantity)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTradePnlValue(t *testing.T) {
	open := Trade{}
	assert.Zero(t, open.PnlValue())

	pnl := 250.0
	closed := Trade{Pnl: &pnl, IsClosed: true}
	assert.Equal(t, 250.0, closed.PnlValue())
}
