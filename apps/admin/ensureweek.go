package main

import (
	"context"
	"fmt"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
)

func (cli *commandLine) ensureWeek(ctx context.Context, date string) error {
	start := cli.cal.CurrentWeek()
	if date != "" {
		d, err := core.ParseDate(date)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
		}
		start = calendar.WeekStart(d.Time)
	}

	wk, err := cli.weekSvc.Ensure(ctx, start)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "week %s: %s to %s, deadline %s\n",
		wk.ID, wk.WeekStart, wk.WeekEnd(), wk.DeadlineAt.In(cli.cal.Location()).Format("Mon 2 Jan 2006 15:04 MST"))
	return nil
}
