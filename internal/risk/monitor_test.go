package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitorFiresOncePerThreshold(t *testing.T) {
	m := NewMonitor()

	alert, fired := m.Observe(1, "2026-03-02", 55)
	assert.True(t, fired)
	assert.Equal(t, ThresholdCaution, alert.Threshold)
	assert.Equal(t, ZoneCaution, alert.Zone)

	// Same zone again, already notified.
	_, fired = m.Observe(1, "2026-03-02", 60)
	assert.False(t, fired)

	alert, fired = m.Observe(1, "2026-03-02", 80)
	assert.True(t, fired)
	assert.Equal(t, ThresholdDanger, alert.Threshold)

	alert, fired = m.Observe(1, "2026-03-02", 104)
	assert.True(t, fired)
	assert.Equal(t, ThresholdStop, alert.Threshold)

	_, fired = m.Observe(1, "2026-03-02", 120)
	assert.False(t, fired)
}

func TestMonitorJumpFiresHighestOnly(t *testing.T) {
	m := NewMonitor()

	alert, fired := m.Observe(1, "2026-03-02", 110)
	assert.True(t, fired)
	assert.Equal(t, ThresholdStop, alert.Threshold)

	// Lower thresholds were skipped and never fire afterwards.
	_, fired = m.Observe(1, "2026-03-02", 60)
	assert.False(t, fired)
	_, fired = m.Observe(1, "2026-03-02", 80)
	assert.False(t, fired)
}

func TestMonitorFluctuationDoesNotRefire(t *testing.T) {
	m := NewMonitor()

	_, fired := m.Observe(1, "2026-03-02", 78)
	assert.True(t, fired)

	// Recovers below danger, then crosses it again.
	_, fired = m.Observe(1, "2026-03-02", 40)
	assert.False(t, fired)
	_, fired = m.Observe(1, "2026-03-02", 80)
	assert.False(t, fired)
}

func TestMonitorBelowCautionNeverFires(t *testing.T) {
	m := NewMonitor()

	_, fired := m.Observe(1, "2026-03-02", 49.9)
	assert.False(t, fired)
}

func TestMonitorNewDayResetsState(t *testing.T) {
	m := NewMonitor()

	_, fired := m.Observe(1, "2026-03-02", 90)
	assert.True(t, fired)

	alert, fired := m.Observe(1, "2026-03-03", 55)
	assert.True(t, fired)
	assert.Equal(t, ThresholdCaution, alert.Threshold)
}

func TestMonitorTracksUsersIndependently(t *testing.T) {
	m := NewMonitor()

	_, fired := m.Observe(1, "2026-03-02", 90)
	assert.True(t, fired)

	alert, fired := m.Observe(2, "2026-03-02", 90)
	assert.True(t, fired)
	assert.Equal(t, ThresholdDanger, alert.Threshold)
}

func TestMonitorReset(t *testing.T) {
	m := NewMonitor()

	_, fired := m.Observe(1, "2026-03-02", 90)
	assert.True(t, fired)

	m.Reset()

	alert, fired := m.Observe(1, "2026-03-02", 90)
	assert.True(t, fired)
	assert.Equal(t, ThresholdDanger, alert.Threshold)
}
