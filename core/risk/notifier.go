package risk

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/stats"
)

// Notifier emails an at-risk digest to the configured recipients.
type Notifier struct {
	mailSvc core.EmailService
	conf    *core.Config
}

func NewNotifier(mailSvc core.EmailService, conf *core.Config) *Notifier {
	return &Notifier{mailSvc: mailSvc, conf: conf}
}

// NotifyAtRisk sends one digest covering all flagged students. Nothing is
// sent when the list or the recipient set is empty.
func (n *Notifier) NotifyAtRisk(agg *stats.Aggregator, flagged []AtRisk) {
	if len(flagged) == 0 || len(n.conf.AlertEmails) == 0 {
		return
	}

	view := agg.View()
	lines := make([]string, 0, len(flagged))
	for _, ar := range flagged {
		name := ar.StudentID
		if st, ok := view.StudentByID(ar.StudentID); ok {
			name = fmt.Sprintf("%s (%s)", st.Name, st.StudentID)
		}
		reasons := make([]string, 0, len(ar.Reasons))
		for _, r := range ar.Reasons {
			reasons = append(reasons, string(r))
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", name, strings.Join(reasons, ", ")))
	}

	to := make([]mail.Address, 0, len(n.conf.AlertEmails))
	for _, addr := range n.conf.AlertEmails {
		to = append(to, mail.Address{Address: addr})
	}

	n.mailSvc.SendMessages(&core.EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("At-risk students: %d flagged", len(flagged)),
		BodyStr: "The following students are currently flagged as at risk:\n\n" + strings.Join(lines, "\n") + "\n",
	})
}
