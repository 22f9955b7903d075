package dto

import (
	"time"

	"github.com/devarshiadi/devconsole/internal/domain"
)

// StatsResponse represents the response for GET /api/v1/stats.
type StatsResponse struct {
	Period         string     `json:"period"`
	PeriodStart    time.Time  `json:"period_start"`
	PeriodEnd      time.Time  `json:"period_end"`
	TotalViews     int        `json:"total_views"`
	UniqueVisitors int        `json:"unique_visitors"`
	ByDay          []DayViews `json:"by_day"`
}

// DayViews is the view count of one day.
type DayViews struct {
	Day   string `json:"day"`
	Views int    `json:"views"`
}

// NewStatsResponse converts domain stats to the response format.
func NewStatsResponse(stats *domain.ViewStats) StatsResponse {
	days := make([]DayViews, len(stats.ByDay))
	for i, d := range stats.ByDay {
		days[i] = DayViews{
			Day:   d.Day.Format(time.DateOnly),
			Views: d.Views,
		}
	}

	return StatsResponse{
		Period:         string(stats.Period),
		PeriodStart:    stats.PeriodStart,
		PeriodEnd:      stats.PeriodEnd,
		TotalViews:     stats.TotalViews,
		UniqueVisitors: stats.UniqueVisitors,
		ByDay:          days,
	}
}
