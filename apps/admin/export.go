package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core/calendar"
	exportsvc "github.com/trezcool/housepoints/services/export"
)

func (cli *commandLine) export(ctx context.Context, period, path string) error {
	p, err := calendar.ParsePeriod(period)
	if err != nil {
		return err
	}

	board, err := cli.entrySvc.Scoreboard(ctx, p)
	if err != nil {
		return errors.Wrap(err, "computing scoreboard")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	if err = exportsvc.WriteScoreboard(f, board); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "closing export file")
	}

	_, _ = fmt.Fprintf(cli.out, "scoreboard %s (%s to %s) written to %s\n", p, board.Range.Start, board.Range.End, path)
	return nil
}
