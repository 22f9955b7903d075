package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/devarshiadi/devconsole/internal/config"
	"github.com/devarshiadi/devconsole/internal/page"
	"github.com/devarshiadi/devconsole/internal/typewriter"
)

func typeCommand() *cli.Command {
	return &cli.Command{
		Name:  "type",
		Usage: "Type the console profile out in the terminal",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "delay",
				Value: config.DefaultTypeDelay,
				Usage: "Pause between characters",
			},
			&cli.BoolFlag{
				Name:  "hyperlinks",
				Usage: "Print links as OSC 8 terminal hyperlinks",
			},
		},
		Action: runType,
	}
}

func runType(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	text, err := page.ProfileText(time.Now())
	if err != nil {
		return fmt.Errorf("render profile: %w", err)
	}

	w := c.App.Writer
	res, err := typewriter.New(text).Run(ctx, w, c.Duration("delay"))
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w)
		return nil
	}
	if err != nil {
		return err
	}

	format := typewriter.PlainLink
	if c.Bool("hyperlinks") {
		format = typewriter.TerminalHyperlink
	}

	fmt.Fprintln(w, "Links:")
	for _, link := range res.Links {
		fmt.Fprintf(w, "  %s\n", format(link))
	}
	return nil
}
