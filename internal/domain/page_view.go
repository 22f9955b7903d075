package domain

import (
	"fmt"
	"time"
)

// PageView is one served console page, recorded only when the view log is enabled.
type PageView struct {
	ID         string
	Path       string
	UserAgent  string
	RemoteAddr string
	RequestID  string
	RenderedAt time.Time
}

// StatsPeriod selects the window of a stats query.
type StatsPeriod string

const (
	StatsPeriodDay   StatsPeriod = "day"
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
	StatsPeriodAll   StatsPeriod = "all"
)

// ParseStatsPeriod validates a period string. Empty input selects a week.
func ParseStatsPeriod(s string) (StatsPeriod, error) {
	switch p := StatsPeriod(s); p {
	case "":
		return StatsPeriodWeek, nil
	case StatsPeriodDay, StatsPeriodWeek, StatsPeriodMonth, StatsPeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidPeriod, s)
	}
}

// Start returns the beginning of the period ending at now.
// StatsPeriodAll starts at the zero time.
func (p StatsPeriod) Start(now time.Time) time.Time {
	switch p {
	case StatsPeriodDay:
		return now.AddDate(0, 0, -1)
	case StatsPeriodMonth:
		return now.AddDate(0, -1, 0)
	case StatsPeriodAll:
		return time.Time{}
	default:
		return now.AddDate(0, 0, -7)
	}
}

// DailyViews is the view count for one calendar day.
type DailyViews struct {
	Day   time.Time
	Views int
}

// ViewStats summarises the page-view log over a period.
type ViewStats struct {
	Period         StatsPeriod
	PeriodStart    time.Time
	PeriodEnd      time.Time
	TotalViews     int
	UniqueVisitors int
	ByDay          []DailyViews
}
