package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/trezcool/darasa/core/record"
)

// report prints the cohort summary and a per-student metrics table.
func (cli *commandLine) report(scope record.Scope) error {
	agg, err := cli.aggregator(scope)
	if err != nil {
		return err
	}

	today := time.Now().UTC().Format("2006-01-02")
	if scope.Date != "" {
		today = scope.Date
	}
	summary := agg.Summary(today)

	fmt.Fprintf(cli.out, "Students: %d\n", summary.TotalStudents)
	fmt.Fprintf(cli.out, "Present today: %d\n", summary.PresentToday)
	fmt.Fprintf(cli.out, "Attendance rate: %d%%\n", summary.AttendanceRate)
	fmt.Fprintf(cli.out, "Average score: %d%%\n", summary.AverageScore)
	fmt.Fprintf(cli.out, "Behavioral incidents: %d\n", summary.BehavioralIncidents)
	fmt.Fprintf(cli.out, "High performers: %d\n", summary.HighPerformers)
	fmt.Fprintln(cli.out)

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCODE\tCLASS\tATTENDANCE\tSCORE\tPARTICIPATION\tBEHAVIOR +/-")
	for _, st := range agg.View().Students {
		s := agg.StudentStats(st.ID)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%d%%\t%.1f\t%d/%d\n",
			st.Name, st.StudentID, st.Class,
			s.AttendanceRate, s.AverageScore, s.AverageParticipation,
			s.Behavior.Positive, s.Behavior.Negative,
		)
	}
	return w.Flush()
}
