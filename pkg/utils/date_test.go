package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyAndLabel(t *testing.T) {
	d := time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2026-03-02", DateKey(d))
	assert.Equal(t, "Mar 02", DateLabel("2026-03-02"))
	assert.Equal(t, "bad-date", DateLabel("bad-date"))
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back to monday",
			in:   time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday stays put",
			in:   time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the previous monday",
			in:   time.Date(2026, 3, 22, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in))
		})
	}
}

func TestStartAndEndOfMonth(t *testing.T) {
	in := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(in))
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), EndOfMonth(in))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
