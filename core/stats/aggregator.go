package stats

import (
	"math"

	"github.com/trezcool/darasa/core/record"
)

// HighPerformerScorePercent marks students whose raw average score qualifies
// them as high performers on the dashboard.
const HighPerformerScorePercent = 80

type (
	BehaviorCounts struct {
		Positive int `json:"positive"`
		Negative int `json:"negative"`
	}

	// StudentStats bundles the per-student metrics shown on profile cards.
	StudentStats struct {
		StudentID            string         `json:"studentId"`
		AttendanceRate       int            `json:"attendanceRate"`
		AverageScore         int            `json:"averageScore"`
		AverageParticipation float64        `json:"averageParticipation"`
		Behavior             BehaviorCounts `json:"behavior"`
		TotalAssessments     int            `json:"totalAssessments"`
		TotalParticipation   int            `json:"totalParticipation"`
	}

	// Summary holds the cohort-wide dashboard statistics.
	Summary struct {
		TotalStudents       int `json:"totalStudents"`
		PresentToday        int `json:"presentToday"`
		AttendanceRate      int `json:"attendanceRate"`
		AverageScore        int `json:"averageScore"`
		BehavioralIncidents int `json:"behavioralIncidents"`
		HighPerformers      int `json:"highPerformers"`
	}

	// Aggregator computes metrics over a scoped view. All methods are pure:
	// the view is indexed once at construction and never mutated, so repeated
	// calls with the same inputs always agree.
	Aggregator struct {
		view          record.View
		attendance    map[string][]record.AttendanceRecord
		assessments   map[string][]record.AssessmentScore
		participation map[string][]record.ParticipationLog
		behavioral    map[string][]record.BehavioralRecord
	}
)

func NewAggregator(view record.View) *Aggregator {
	agg := &Aggregator{
		view:          view,
		attendance:    make(map[string][]record.AttendanceRecord),
		assessments:   make(map[string][]record.AssessmentScore),
		participation: make(map[string][]record.ParticipationLog),
		behavioral:    make(map[string][]record.BehavioralRecord),
	}
	for _, r := range view.Attendance {
		agg.attendance[r.StudentID] = append(agg.attendance[r.StudentID], r)
	}
	for _, r := range view.Assessments {
		agg.assessments[r.StudentID] = append(agg.assessments[r.StudentID], r)
	}
	for _, r := range view.Participation {
		agg.participation[r.StudentID] = append(agg.participation[r.StudentID], r)
	}
	for _, r := range view.Behavioral {
		agg.behavioral[r.StudentID] = append(agg.behavioral[r.StudentID], r)
	}
	return agg
}

// View returns the scoped view this aggregator was built over.
func (agg *Aggregator) View() record.View { return agg.view }

// AttendanceCounts returns the present and total attendance record counts for
// a student. Duplicate records for the same day all count; the store does not
// enforce one record per student per day.
func (agg *Aggregator) AttendanceCounts(studentID string) (present, total int) {
	recs := agg.attendance[studentID]
	for _, r := range recs {
		if r.Status == record.StatusPresent {
			present++
		}
	}
	return present, len(recs)
}

// AttendanceRate returns round(100 * present / total), or 0 when the student
// has no attendance records.
func (agg *Aggregator) AttendanceRate(studentID string) int {
	present, total := agg.AttendanceCounts(studentID)
	if total == 0 {
		return 0
	}
	return roundPct(float64(present) / float64(total))
}

// AssessmentCount returns the number of assessment records for a student,
// including unratable ones (maxScore = 0).
func (agg *Aggregator) AssessmentCount(studentID string) int {
	return len(agg.assessments[studentID])
}

// AverageScorePercent returns the mean of the student's raw score percentages,
// rounded once at the end. Records with maxScore = 0 cannot yield a ratio and
// are excluded from the mean; an empty record set yields 0.
func (agg *Aggregator) AverageScorePercent(studentID string) int {
	return roundPct(meanScoreRatio(agg.assessments[studentID]))
}

// AverageParticipation returns the mean rating to one decimal place, or 0.0
// when the student has no participation logs.
func (agg *Aggregator) AverageParticipation(studentID string) float64 {
	logs := agg.participation[studentID]
	if len(logs) == 0 {
		return 0
	}
	var sum int
	for _, l := range logs {
		sum += l.Rating
	}
	return math.Round(float64(sum)/float64(len(logs))*10) / 10
}

func (agg *Aggregator) BehaviorCounts(studentID string) BehaviorCounts {
	var counts BehaviorCounts
	for _, r := range agg.behavioral[studentID] {
		switch r.Type {
		case record.BehaviorPositive:
			counts.Positive++
		case record.BehaviorNegative:
			counts.Negative++
		}
	}
	return counts
}

func (agg *Aggregator) StudentStats(studentID string) StudentStats {
	return StudentStats{
		StudentID:            studentID,
		AttendanceRate:       agg.AttendanceRate(studentID),
		AverageScore:         agg.AverageScorePercent(studentID),
		AverageParticipation: agg.AverageParticipation(studentID),
		Behavior:             agg.BehaviorCounts(studentID),
		TotalAssessments:     agg.AssessmentCount(studentID),
		TotalParticipation:   len(agg.participation[studentID]),
	}
}

// SubjectAverage averages the raw percentages of every matching assessment
// record in the view, rounding only at the end. Averaging already-rounded
// per-student averages would compound rounding error.
func (agg *Aggregator) SubjectAverage(subject string) int {
	matching := make([]record.AssessmentScore, 0, len(agg.view.Assessments))
	for _, r := range agg.view.Assessments {
		if r.Subject == subject {
			matching = append(matching, r)
		}
	}
	return roundPct(meanScoreRatio(matching))
}

// ClassAverage averages the raw percentages of all assessment records of the
// students in the given class.
func (agg *Aggregator) ClassAverage(classID string) int {
	matching := make([]record.AssessmentScore, 0, len(agg.view.Assessments))
	for _, st := range agg.view.Students {
		if st.Class == classID {
			matching = append(matching, agg.assessments[st.ID]...)
		}
	}
	return roundPct(meanScoreRatio(matching))
}

// Summary computes the dashboard statistics for the view. `today` narrows the
// present-today count; the cohort attendance rate and average score span the
// whole view.
func (agg *Aggregator) Summary(today string) Summary {
	var presentToday, present int
	for _, r := range agg.view.Attendance {
		if r.Status == record.StatusPresent {
			present++
			if r.Date == today {
				presentToday++
			}
		}
	}
	attendanceRate := 0
	if total := len(agg.view.Attendance); total > 0 {
		attendanceRate = roundPct(float64(present) / float64(total))
	}

	var incidents int
	for _, r := range agg.view.Behavioral {
		if r.Type == record.BehaviorNegative {
			incidents++
		}
	}

	var highPerformers int
	for _, st := range agg.view.Students {
		recs := agg.assessments[st.ID]
		if len(recs) == 0 {
			continue
		}
		if meanScoreRatio(recs) >= HighPerformerScorePercent/100.0 {
			highPerformers++
		}
	}

	return Summary{
		TotalStudents:       len(agg.view.Students),
		PresentToday:        presentToday,
		AttendanceRate:      attendanceRate,
		AverageScore:        roundPct(meanScoreRatio(agg.view.Assessments)),
		BehavioralIncidents: incidents,
		HighPerformers:      highPerformers,
	}
}

// meanScoreRatio returns the mean score/maxScore ratio over recs, skipping
// records whose maxScore is zero. Empty input yields 0.
func meanScoreRatio(recs []record.AssessmentScore) float64 {
	var sum float64
	var n int
	for _, r := range recs {
		if r.MaxScore == 0 {
			continue
		}
		sum += float64(r.Score) / float64(r.MaxScore)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}
