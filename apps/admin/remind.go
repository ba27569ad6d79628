package main

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
)

func (cli *commandLine) remind(ctx context.Context, to string) error {
	recipients, err := core.ParseAddressList(to)
	if err != nil {
		return errors.Errorf("invalid recipients %q", to)
	}
	if len(recipients) == 0 {
		if recipients, err = cli.teacherAddresses(ctx); err != nil {
			return err
		}
	}
	if len(recipients) == 0 {
		return errors.New("no recipients: pass -to or set class teacher emails")
	}

	wk, err := cli.weekSvc.EntryWeek(ctx)
	if err != nil {
		return errors.Wrap(err, "ensuring entry week")
	}
	deadline := cli.cal.DeadlineFor(wk.WeekStart).In(cli.cal.Location())

	msg := &core.EmailMessage{
		To:      recipients,
		Subject: fmt.Sprintf("House points for the week of %s", wk.WeekStart.Format("2 January")),
		Body: fmt.Sprintf(
			"Please submit your house points for the week of %s.\n\nDeadline: %s.\n",
			wk.WeekStart.Format("Monday 2 January 2006"),
			deadline.Format("Monday 2 January 2006 at 15:04 MST"),
		),
	}
	if err = cli.mailSvc.SendMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "sending reminder")
	}

	addrs := make([]string, 0, len(recipients))
	for _, r := range recipients {
		addrs = append(addrs, r.Address)
	}
	_, _ = fmt.Fprintf(cli.out, "reminder sent to %s\n", strings.Join(addrs, ", "))
	return nil
}

func (cli *commandLine) teacherAddresses(ctx context.Context) ([]mail.Address, error) {
	classes, err := cli.classSvc.Query(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying classes")
	}

	seen := make(map[string]bool)
	addrs := make([]mail.Address, 0)
	for _, c := range classes {
		if c.TeacherEmail == "" || seen[c.TeacherEmail] {
			continue
		}
		seen[c.TeacherEmail] = true
		addrs = append(addrs, mail.Address{Address: c.TeacherEmail})
	}
	return addrs, nil
}
