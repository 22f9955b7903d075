package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/devarshiadi/devconsole/internal/config"
	"github.com/devarshiadi/devconsole/internal/database"
	"github.com/devarshiadi/devconsole/internal/domain"
	"github.com/devarshiadi/devconsole/internal/report"
	"github.com/devarshiadi/devconsole/internal/repository"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print a markdown report of recorded page views",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "period",
				Value: config.DefaultStatsPeriod,
				Usage: "Period: day, week, month, all",
			},
		},
		Action: runStats,
	}
}

func runStats(c *cli.Context) error {
	ctx := c.Context

	databaseURL := c.String("database-url")
	if databaseURL == "" {
		return fmt.Errorf("%w: set --database-url or DATABASE_URL", domain.ErrViewLogDisabled)
	}

	period, err := domain.ParseStatsPeriod(c.String("period"))
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := repository.NewPageViewRepository(db.Pool()).Stats(ctx, period, time.Now())
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}

	return report.WriteMarkdown(c.App.Writer, stats)
}
