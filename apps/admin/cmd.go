package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/risk"
	"github.com/trezcool/darasa/core/stats"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	recordSvc  *record.Service
	statsCache *stats.Cache
	classifier *risk.Classifier
	notifier   *risk.Notifier
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  report [-class ID] [-gender M|F] [-search NAME] [-date DATE] [-term-start DATE -term-end DATE] - print the cohort report")
	fmt.Fprintln(cli.out, "  alert [-class ID] [-gender M|F] [-send] - list at-risk students; -send emails the staff digest")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
	reportClass := reportCmd.String("class", "", "Restrict the report to one class.")
	reportGender := reportCmd.String("gender", "", "Restrict the report to one gender.")
	reportSearch := reportCmd.String("search", "", "Restrict the report to students whose name contains this.")
	reportDate := reportCmd.String("date", "", "Restrict events to one ISO date.")
	reportTermStart := reportCmd.String("term-start", "", "Restrict events to a term starting at this ISO date.")
	reportTermEnd := reportCmd.String("term-end", "", "Restrict events to a term ending at this ISO date.")

	alertCmd := flag.NewFlagSet("alert", flag.ExitOnError)
	alertClass := alertCmd.String("class", "", "Restrict the check to one class.")
	alertGender := alertCmd.String("gender", "", "Restrict the check to one gender.")
	alertSend := alertCmd.Bool("send", false, "Email the at-risk digest to the configured staff addresses.")

	switch args[1] {
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return err
		}
		scope := record.Scope{
			ClassID:   *reportClass,
			Gender:    *reportGender,
			Search:    *reportSearch,
			Date:      *reportDate,
			TermStart: *reportTermStart,
			TermEnd:   *reportTermEnd,
		}
		return cli.report(scope)
	case "alert":
		if err := alertCmd.Parse(args[2:]); err != nil {
			return err
		}
		scope := record.Scope{ClassID: *alertClass, Gender: *alertGender}
		return cli.alert(scope, *alertSend)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) aggregator(scope record.Scope) (*stats.Aggregator, error) {
	scope.Clean()
	snap, err := cli.recordSvc.Snapshot(context.Background())
	if err != nil {
		return nil, err
	}
	return cli.statsCache.For(scope.Apply(snap)), nil
}
