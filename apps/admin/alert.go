package main

import (
	"fmt"
	"strings"

	"github.com/trezcool/darasa/core/record"
)

// alert lists the currently at-risk students; with send, the staff digest
// email goes out as well.
func (cli *commandLine) alert(scope record.Scope, send bool) error {
	agg, err := cli.aggregator(scope)
	if err != nil {
		return err
	}

	flagged := cli.classifier.Classify(agg)
	if len(flagged) == 0 {
		fmt.Fprintln(cli.out, "No at-risk students.")
		return nil
	}

	view := agg.View()
	for _, ar := range flagged {
		name := ar.StudentID
		if st, ok := view.StudentByID(ar.StudentID); ok {
			name = fmt.Sprintf("%s (%s)", st.Name, st.StudentID)
		}
		reasons := make([]string, 0, len(ar.Reasons))
		for _, r := range ar.Reasons {
			reasons = append(reasons, string(r))
		}
		fmt.Fprintf(cli.out, "%s: %s\n", name, strings.Join(reasons, ", "))
	}

	if send {
		cli.notifier.NotifyAtRisk(agg, flagged)
		fmt.Fprintf(cli.out, "\nDigest sent for %d students.\n", len(flagged))
	}
	return nil
}
