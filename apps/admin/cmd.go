package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/classroom"
	"github.com/trezcool/housepoints/core/entry"
	"github.com/trezcool/housepoints/core/week"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db       *sqlx.DB
	cal      *calendar.Resolver
	weekSvc  *week.Service
	classSvc *classroom.Service
	entrySvc *entry.Service
	mailSvc  core.EmailService
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]            - run a goose command (up, down, status, version, redo, reset, up-to N, down-to N)")
	_, _ = fmt.Fprintln(cli.out, "  ensureweek [-date YYYY-MM-DD]     - create the week containing date (default: today) if missing")
	_, _ = fmt.Fprintln(cli.out, "  export [-period week|term] -out FILE - write the scoreboard to an .xlsx file")
	_, _ = fmt.Fprintln(cli.out, "  remind [-to EMAIL,EMAIL]          - mail the entry week deadline (default: every class teacher)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	ensureWeekCmd := flag.NewFlagSet("ensureweek", flag.ContinueOnError)
	ensureWeekCmd.SetOutput(cli.out)
	ensureWeekDate := ensureWeekCmd.String("date", "", "Any day of the week, YYYY-MM-DD. Defaults to today in the school's timezone.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportCmd.SetOutput(cli.out)
	exportPeriod := exportCmd.String("period", string(calendar.PeriodWeek), "Aggregation period: week or term.")
	exportOut := exportCmd.String("out", "", "Path of the .xlsx file to write.")

	remindCmd := flag.NewFlagSet("remind", flag.ContinueOnError)
	remindCmd.SetOutput(cli.out)
	remindTo := remindCmd.String("to", "", "Comma separated recipients. Defaults to every class teacher.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "ensureweek":
		if err := ensureWeekCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.ensureWeek(ctx, *ensureWeekDate)

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(ctx, *exportPeriod, *exportOut)

	case "remind":
		if err := remindCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.remind(ctx, *remindTo)

	default:
		cli.printUsage()
		return errHelp
	}
}
