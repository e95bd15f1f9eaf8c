package record

import "github.com/google/uuid"

// Snapshot is the immutable in-memory copy of the roster and the four event
// collections, as delivered by the external data collaborator. It is assembled
// once per view activation and replaced wholesale on refresh, never patched.
type Snapshot struct {
	Version       string
	Students      []Student
	Attendance    []AttendanceRecord
	Assessments   []AssessmentScore
	Participation []ParticipationLog
	Behavioral    []BehavioralRecord
}

// NewSnapshot stamps the given collections with a fresh version key.
func NewSnapshot(
	students []Student,
	attendance []AttendanceRecord,
	assessments []AssessmentScore,
	participation []ParticipationLog,
	behavioral []BehavioralRecord,
) Snapshot {
	return Snapshot{
		Version:       uuid.New().String(),
		Students:      students,
		Attendance:    attendance,
		Assessments:   assessments,
		Participation: participation,
		Behavioral:    behavioral,
	}
}

// View is a scoped subset of a Snapshot. Event collections only ever contain
// records whose studentId belongs to Students; orphan records are dropped when
// the view is derived.
type View struct {
	ScopeKey string
	Version  string

	Students      []Student
	Attendance    []AttendanceRecord
	Assessments   []AssessmentScore
	Participation []ParticipationLog
	Behavioral    []BehavioralRecord
}

// StudentByID returns the roster entry for id within this view.
func (v View) StudentByID(id string) (Student, bool) {
	for _, st := range v.Students {
		if st.ID == id {
			return st, true
		}
	}
	return Student{}, false
}
