package main

import (
	"log"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/risk"
	"github.com/trezcool/darasa/core/stats"
	emailsvc "github.com/trezcool/darasa/services/email"
	httprecords "github.com/trezcool/darasa/storage/records/httpapi"
	sqlxrecords "github.com/trezcool/darasa/storage/records/sqlxrepo"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// the DB source is used when DB credentials are configured, the HTTP
	// source otherwise
	var src record.Source
	if conf.Database.User == "" {
		src = httprecords.NewSource(conf)
	} else {
		db, err := sqlxrecords.Open(conf)
		errAndDie(err)
		defer func() { _ = db.Close() }()
		errAndDie(sqlxrecords.Ping(db))
		src = sqlxrecords.NewSource(db)
	}

	recordSvc := record.NewService(src)

	// start CLI
	cli := commandLine{
		recordSvc:  recordSvc,
		statsCache: stats.NewCache(),
		classifier: risk.NewClassifier(),
		notifier:   risk.NewNotifier(emailsvc.NewConsoleService(conf), conf),
		out:        os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
