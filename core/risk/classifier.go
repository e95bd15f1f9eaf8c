package risk

import (
	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/stats"
)

type Reason string

const (
	ReasonFailing      Reason = "failing"
	ReasonMissingClass Reason = "missingClass"
	ReasonBadBehavior  Reason = "badBehavior"
)

// Thresholds gathers the classification cutoffs in one place instead of the
// per-screen copies the old UI carried. They are fixed: callers needing
// different cutoffs must wrap the classifier, not parametrize it.
type Thresholds struct {
	FailingScorePercent int     // flagged when averageScorePercent falls below this
	MissingClassRatio   float64 // flagged when present/total falls below this
	BadBehaviorCount    int     // flagged at this many negative records
}

var defaultThresholds = Thresholds{
	FailingScorePercent: 40,
	MissingClassRatio:   0.75,
	BadBehaviorCount:    3,
}

type AtRisk struct {
	StudentID string   `json:"studentId"`
	Reasons   []Reason `json:"reasons"`
}

type Classifier struct {
	th Thresholds
}

func NewClassifier() *Classifier {
	return &Classifier{th: defaultThresholds}
}

// Classify flags every student in the view carrying at least one risk reason.
// Results follow roster order, one entry per student, reasons in a fixed
// order. Students with no evidence for a reason (zero records of that kind)
// are never flagged for it.
func (c *Classifier) Classify(agg *stats.Aggregator) []AtRisk {
	view := agg.View()
	flagged := make([]AtRisk, 0, len(view.Students))
	for _, st := range view.Students {
		reasons := c.reasons(st, agg)
		if len(reasons) > 0 {
			flagged = append(flagged, AtRisk{StudentID: st.ID, Reasons: reasons})
		}
	}
	return flagged
}

func (c *Classifier) reasons(st record.Student, agg *stats.Aggregator) []Reason {
	var reasons []Reason

	if agg.AssessmentCount(st.ID) > 0 && agg.AverageScorePercent(st.ID) < c.th.FailingScorePercent {
		reasons = append(reasons, ReasonFailing)
	}

	// raw ratio, not the rounded rate
	if present, total := agg.AttendanceCounts(st.ID); total > 0 {
		if float64(present)/float64(total) < c.th.MissingClassRatio {
			reasons = append(reasons, ReasonMissingClass)
		}
	}

	// absolute count, not a rate
	if agg.BehaviorCounts(st.ID).Negative >= c.th.BadBehaviorCount {
		reasons = append(reasons, ReasonBadBehavior)
	}

	return reasons
}
