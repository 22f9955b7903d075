// Package report renders page-view statistics for the terminal.
package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/devarshiadi/devconsole/internal/domain"
)

// WriteMarkdown writes stats as a markdown report to w.
func WriteMarkdown(w io.Writer, stats *domain.ViewStats) error {
	md := markdown.NewMarkdown(w)

	md.H1("Console Page Views")
	md.PlainText("")

	start := "beginning"
	if !stats.PeriodStart.IsZero() {
		start = stats.PeriodStart.Format(time.DateTime)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Period", string(stats.Period)},
			{"From", start},
			{"To", stats.PeriodEnd.Format(time.DateTime)},
			{"Total views", strconv.Itoa(stats.TotalViews)},
			{"Unique visitors", strconv.Itoa(stats.UniqueVisitors)},
		},
	})
	md.PlainText("")

	md.H2("Views by Day")
	md.PlainText("")

	if len(stats.ByDay) == 0 {
		md.Note("No page views recorded in this period.")
		return md.Build()
	}

	rows := make([][]string, len(stats.ByDay))
	for i, d := range stats.ByDay {
		rows[i] = []string{d.Day.Format(time.DateOnly), strconv.Itoa(d.Views)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Day", "Views"},
		Rows:   rows,
	})

	return md.Build()
}
