package main

import (
	"fmt"
	"log"
	"os"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/classroom"
	"github.com/trezcool/housepoints/core/entry"
	"github.com/trezcool/housepoints/core/house"
	"github.com/trezcool/housepoints/core/term"
	"github.com/trezcool/housepoints/core/week"
	emailsvc "github.com/trezcool/housepoints/services/email"
	logsvc "github.com/trezcool/housepoints/services/logger"
	"github.com/trezcool/housepoints/storage/database"
	sqlxrepos "github.com/trezcool/housepoints/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	loc, err := calendar.LoadZone(conf.Calendar.Timezone)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading timezone: %v", err), err)
	}
	cal := calendar.NewResolver(loc, nil)

	// set up DB
	if err = database.CreateIfNotExist(conf); err != nil {
		logger.Fatal(fmt.Sprintf("creating database: %v", err), err)
	}
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, os.Stdout)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf)
	}
	weekSvc := week.NewService(sqlxrepos.NewWeekRepository(db), cal)
	houseSvc := house.NewService(sqlxrepos.NewHouseRepository(db), nil)
	classSvc := classroom.NewService(sqlxrepos.NewClassRepository(db), nil)
	termSvc := term.NewService(database.NewDB(db), sqlxrepos.NewTermRepository(db), nil)

	// start CLI
	cli := commandLine{
		db:       db,
		cal:      cal,
		weekSvc:  weekSvc,
		classSvc: classSvc,
		entrySvc: entry.NewService(sqlxrepos.NewEntryRepository(db), weekSvc, houseSvc, classSvc, cal, termSvc.ActiveRange, logger),
		mailSvc:  mailSvc,
		out:      os.Stdout,
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %v", err), err)
		}
		os.Exit(1)
	}
}
