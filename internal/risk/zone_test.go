package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		usedRisk     float64
		maxDailyLoss float64
		wantZone     Zone
		wantPct      float64
	}{
		{
			name:         "no loss is safe",
			usedRisk:     0,
			maxDailyLoss: 1000,
			wantZone:     ZoneSafe,
			wantPct:      0,
		},
		{
			name:         "just under caution",
			usedRisk:     499.99,
			maxDailyLoss: 1000,
			wantZone:     ZoneSafe,
			wantPct:      49.999,
		},
		{
			name:         "caution boundary is inclusive",
			usedRisk:     500,
			maxDailyLoss: 1000,
			wantZone:     ZoneCaution,
			wantPct:      50,
		},
		{
			name:         "just under danger",
			usedRisk:     749.99,
			maxDailyLoss: 1000,
			wantZone:     ZoneCaution,
			wantPct:      74.999,
		},
		{
			name:         "danger boundary is inclusive",
			usedRisk:     750,
			maxDailyLoss: 1000,
			wantZone:     ZoneDanger,
			wantPct:      75,
		},
		{
			name:         "just under stop",
			usedRisk:     999.99,
			maxDailyLoss: 1000,
			wantZone:     ZoneDanger,
			wantPct:      99.999,
		},
		{
			name:         "stop boundary is inclusive",
			usedRisk:     1000,
			maxDailyLoss: 1000,
			wantZone:     ZoneStop,
			wantPct:      100,
		},
		{
			name:         "beyond the limit stays stop",
			usedRisk:     1500,
			maxDailyLoss: 1000,
			wantZone:     ZoneStop,
			wantPct:      150,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.usedRisk, tt.maxDailyLoss)
			assert.Equal(t, tt.wantZone, got.Zone)
			assert.InDelta(t, tt.wantPct, got.Percentage, 1e-9)
			assert.Equal(t, tt.usedRisk, got.UsedRisk)
			assert.Equal(t, tt.maxDailyLoss, got.MaxLoss)
			assert.Equal(t, got.Zone.Message(), got.Message)
		})
	}
}

func TestClassifyNonPositiveLimit(t *testing.T) {
	for _, limit := range []float64{0, -500} {
		got := Classify(800, limit)
		assert.Equal(t, ZoneSafe, got.Zone)
		assert.Zero(t, got.Percentage)
	}
}
