package risk

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/stats"
)

func aggFor(t *testing.T, students []record.Student, attendance []record.AttendanceRecord,
	assessments []record.AssessmentScore, behavioral []record.BehavioralRecord) *stats.Aggregator {
	t.Helper()
	snap := record.NewSnapshot(students, attendance, assessments, nil, behavioral)
	return stats.NewAggregator(record.Scope{}.Apply(snap))
}

func negatives(studentID string, n int) []record.BehavioralRecord {
	recs := make([]record.BehavioralRecord, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, record.BehavioralRecord{
			ID: studentID + "-b" + strconv.Itoa(i), StudentID: studentID,
			Date: "2025-03-01", Type: record.BehaviorNegative,
		})
	}
	return recs
}

func TestClassifier_Classify(t *testing.T) {
	st := record.Student{ID: "s1", Name: "Amina Yusuf", Class: "1"}

	tests := []struct {
		name        string
		attendance  []record.AttendanceRecord
		assessments []record.AssessmentScore
		behavioral  []record.BehavioralRecord
		want        []Reason
	}{
		{
			name: "no evidence, never flagged",
		},
		{
			name: "failing below 40",
			assessments: []record.AssessmentScore{
				{ID: "x1", StudentID: "s1", Score: 3, MaxScore: 10, Date: "2025-03-01"},
			},
			want: []Reason{ReasonFailing},
		},
		{
			name: "exactly 40 is not failing",
			assessments: []record.AssessmentScore{
				{ID: "x1", StudentID: "s1", Score: 4, MaxScore: 10, Date: "2025-03-01"},
			},
		},
		{
			// any assessment record is evidence; an unratable one leaves the
			// average at 0, which is below the cutoff
			name: "only unratable assessments still flag failing",
			assessments: []record.AssessmentScore{
				{ID: "x1", StudentID: "s1", Score: 3, MaxScore: 0, Date: "2025-03-01"},
			},
			want: []Reason{ReasonFailing},
		},
		{
			name: "attendance below 3/4",
			attendance: []record.AttendanceRecord{
				{ID: "a1", StudentID: "s1", Date: "2025-03-01", Status: record.StatusPresent},
				{ID: "a2", StudentID: "s1", Date: "2025-03-02", Status: record.StatusPresent},
				{ID: "a3", StudentID: "s1", Date: "2025-03-03", Status: record.StatusAbsent},
				{ID: "a4", StudentID: "s1", Date: "2025-03-04", Status: record.StatusLate},
			},
			want: []Reason{ReasonMissingClass},
		},
		{
			name: "attendance at exactly 3/4 passes",
			attendance: []record.AttendanceRecord{
				{ID: "a1", StudentID: "s1", Date: "2025-03-01", Status: record.StatusPresent},
				{ID: "a2", StudentID: "s1", Date: "2025-03-02", Status: record.StatusPresent},
				{ID: "a3", StudentID: "s1", Date: "2025-03-03", Status: record.StatusPresent},
				{ID: "a4", StudentID: "s1", Date: "2025-03-04", Status: record.StatusAbsent},
			},
		},
		{
			name:       "two negatives pass",
			behavioral: negatives("s1", 2),
		},
		{
			name:       "three negatives flag",
			behavioral: negatives("s1", 3),
			want:       []Reason{ReasonBadBehavior},
		},
		{
			name: "multiple reasons in fixed order",
			attendance: []record.AttendanceRecord{
				{ID: "a1", StudentID: "s1", Date: "2025-03-01", Status: record.StatusAbsent},
			},
			assessments: []record.AssessmentScore{
				{ID: "x1", StudentID: "s1", Score: 1, MaxScore: 10, Date: "2025-03-01"},
			},
			behavioral: negatives("s1", 3),
			want:       []Reason{ReasonFailing, ReasonMissingClass, ReasonBadBehavior},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := aggFor(t, []record.Student{st}, tt.attendance, tt.assessments, tt.behavioral)
			flagged := NewClassifier().Classify(agg)

			if tt.want == nil {
				if len(flagged) != 0 {
					t.Errorf("Classify() = %+v, want none", flagged)
				}
				return
			}
			if len(flagged) != 1 {
				t.Fatalf("Classify() flagged %d students, want 1", len(flagged))
			}
			if flagged[0].StudentID != "s1" {
				t.Errorf("Classify() studentId = %q, want s1", flagged[0].StudentID)
			}
			if !reflect.DeepEqual(flagged[0].Reasons, tt.want) {
				t.Errorf("Classify() reasons = %v, want %v", flagged[0].Reasons, tt.want)
			}
		})
	}
}

// The raw attendance ratio decides, not the rounded rate: 149/200 rounds to
// 75% but is still below 3/4.
func TestClassifier_Classify_rawRatio(t *testing.T) {
	st := record.Student{ID: "s1", Name: "A", Class: "1"}
	attendance := make([]record.AttendanceRecord, 0, 200)
	for i := 0; i < 200; i++ {
		status := record.StatusPresent
		if i >= 149 {
			status = record.StatusAbsent
		}
		attendance = append(attendance, record.AttendanceRecord{
			ID: "a" + strconv.Itoa(i), StudentID: "s1", Date: "2025-03-01", Status: status,
		})
	}

	agg := aggFor(t, []record.Student{st}, attendance, nil, nil)
	if got := agg.AttendanceRate("s1"); got != 75 {
		t.Fatalf("AttendanceRate() = %d, want 75", got)
	}

	flagged := NewClassifier().Classify(agg)
	if len(flagged) != 1 || !reflect.DeepEqual(flagged[0].Reasons, []Reason{ReasonMissingClass}) {
		t.Errorf("Classify() = %+v, want missingClass for s1", flagged)
	}
}

func TestClassifier_Classify_rosterOrder(t *testing.T) {
	students := []record.Student{
		{ID: "s1", Name: "A", Class: "1"},
		{ID: "s2", Name: "B", Class: "1"},
		{ID: "s3", Name: "C", Class: "1"},
	}
	behavioral := append(negatives("s3", 3), negatives("s1", 3)...)

	agg := aggFor(t, students, nil, nil, behavioral)
	flagged := NewClassifier().Classify(agg)

	ids := make([]string, 0, len(flagged))
	for _, ar := range flagged {
		ids = append(ids, ar.StudentID)
	}
	if !reflect.DeepEqual(ids, []string{"s1", "s3"}) {
		t.Errorf("Classify() order = %v, want [s1 s3]", ids)
	}
}
