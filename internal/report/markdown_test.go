package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devarshiadi/devconsole/internal/domain"
	"github.com/devarshiadi/devconsole/internal/report"
)

func TestWriteMarkdown(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	stats := &domain.ViewStats{
		Period:         domain.StatsPeriodWeek,
		PeriodStart:    domain.StatsPeriodWeek.Start(now),
		PeriodEnd:      now,
		TotalViews:     5,
		UniqueVisitors: 3,
		ByDay: []domain.DailyViews{
			{Day: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), Views: 2},
			{Day: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), Views: 3},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteMarkdown(&buf, stats))

	out := buf.String()
	assert.Contains(t, out, "# Console Page Views")
	assert.Contains(t, out, "## Views by Day")
	assert.Contains(t, out, "Total views")
	assert.Contains(t, out, "2026-10-10 12:00:00")
	assert.Contains(t, out, "2026-10-15")
	assert.Contains(t, out, "2026-10-17")
	assert.NotContains(t, out, "No page views recorded")
}

func TestWriteMarkdown_Empty(t *testing.T) {
	stats := &domain.ViewStats{
		Period:    domain.StatsPeriodAll,
		PeriodEnd: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteMarkdown(&buf, stats))

	assert.Contains(t, buf.String(), "beginning")
	assert.Contains(t, buf.String(), "No page views recorded in this period.")
}
