package service

import (
	"time"

	"tradejournal/pkg/utils"
)

// Clock resolves "now" in the journal's configured calendar zone. Period
// boundaries (today, week, month) all derive from it so the whole service
// agrees on what day it is.
type Clock struct {
	loc *time.Location
}

func NewClock(timeZone string) *Clock {
	loc := time.Local
	if timeZone != "" {
		if l, err := time.LoadLocation(timeZone); err == nil {
			loc = l
		}
	}
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Today() time.Time {
	return utils.Midnight(c.Now())
}

func (c *Clock) TodayKey() string {
	return utils.DateKey(c.Now())
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
